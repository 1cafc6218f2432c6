// Command finpredictor runs the FinPredictor gateway and backend services.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"finpredictor/internal/config"
	"finpredictor/internal/logger"
	"finpredictor/internal/server"
)

// @title       FinPredictor API
// @version     1.0
// @description Personal finance planning: users, portfolio, savings goals and AI insights behind one gateway.

// @host     localhost:8003
// @BasePath /

var (
	cfg     *config.Config
	rootCmd = &cobra.Command{
		Use:   "finpredictor",
		Short: "FinPredictor gateway and services",
		Long: `FinPredictor plans savings goals against a user's portfolio.

Each service can run on its own (gateway, users, portfolio, goals, ai) or all
of them together in one process. Configuration comes from the environment
and an optional .env file.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	for _, name := range server.Services {
		rootCmd.AddCommand(serviceCmd(name))
	}
	rootCmd.AddCommand(allCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(smokeCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	logger.Sync()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		loaded.LogLevel = level
	}
	cfg = loaded

	logger.Init(cfg.Env, cfg.LogLevel)
	return nil
}
