package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"finpredictor/internal/config"
	"finpredictor/internal/logger"
	"finpredictor/internal/server"
	"finpredictor/internal/validator"
)

func serviceCmd(name string) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Run the %s service", name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port != "" {
				setPort(cfg, name, port)
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer closeApp(app)

			return serve(cmd, app, name)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides the environment)")
	return cmd
}

func allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run the gateway and every service in one process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer closeApp(app)

			handlers := make(map[string]http.Handler, len(server.Services))
			for _, name := range server.Services {
				h, err := app.Handler(name)
				if err != nil {
					return err
				}
				handlers[name] = h
			}

			// The first server to fail stops the others.
			g, ctx := errgroup.WithContext(cmd.Context())
			for _, name := range server.Services {
				port, _ := app.Port(name)
				addr, h := cfg.Addr(port), handlers[name]
				g.Go(func() error {
					return server.Run(ctx, name, addr, h)
				})
			}
			return g.Wait()
		},
	}
}

func serve(cmd *cobra.Command, app *server.App, name string) error {
	h, err := app.Handler(name)
	if err != nil {
		return err
	}
	port, err := app.Port(name)
	if err != nil {
		return err
	}
	return server.Run(cmd.Context(), name, cfg.Addr(port), h)
}

func newApp() (*server.App, error) {
	validator.Register()
	return server.New(cfg)
}

func closeApp(app *server.App) {
	if err := app.Close(); err != nil {
		logger.Get().Warnw("failed to close store", "error", err)
	}
}

func setPort(c *config.Config, service, port string) {
	switch service {
	case server.ServiceGateway:
		c.GatewayPort = port
	case server.ServiceUsers:
		c.UsersPort = port
	case server.ServicePortfolio:
		c.PortfolioPort = port
	case server.ServiceGoals:
		c.GoalsPort = port
	case server.ServiceAI:
		c.AIPort = port
	}
}
