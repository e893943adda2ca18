package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/dental-records/internal/config"
	"github.com/spec-kit/dental-records/internal/observability"
)

// envFile is an optional dotenv file loaded before the environment is read.
var envFile string

// NewRootCmd creates the root command for the dental records CLI. Without a
// subcommand it behaves like serve.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dental-records",
		Short: "Dental clinical records API",
		Long: `dental-records serves the clinical records API: account signup and
session login, patients, biodata, treatment planning, imaging and visits.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading the environment")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}

// bootstrap loads configuration and builds the service logger.
func bootstrap(ctx context.Context) (*config.Config, *zap.Logger, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, observability.WithService(logger, cfg.App), nil
}
