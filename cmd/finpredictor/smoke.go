package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"finpredictor/internal/smoke"
)

func smokeCmd() *cobra.Command {
	var opts smoke.Options
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Exercise a running deployment and print a JSON report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.UsersURL == "" {
				opts.UsersURL = cfg.UsersURL
			}
			runner := smoke.NewRunner(&http.Client{Timeout: cfg.UpstreamTimeout}, opts)
			rep := runner.Run(cmd.Context())

			enc := json.NewEncoder(cmd.OutOrStdout())
			if err := enc.Encode(rep); err != nil {
				return err
			}
			if rep.Failed() {
				return errors.New("smoke run had failures")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.GatewayURL, "gateway-url", "http://localhost:8080", "gateway base URL")
	cmd.Flags().StringVar(&opts.UsersURL, "users-url", "", "users service base URL (default USERS_URL)")
	cmd.Flags().StringVar(&opts.Email, "email", "demo@example.com", "account used for signup and login")
	cmd.Flags().StringVar(&opts.Password, "password", "pass", "password for the account")
	return cmd
}
