package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/dental-records/internal/persistence"
)

type schemaMigrator interface {
	Up() error
	Down() error
	Version() (uint, bool, error)
	Close() error
}

// openMigrator is replaced in tests.
var openMigrator = func(dsn string, logger *zap.Logger) (schemaMigrator, error) {
	return persistence.NewMigrator(dsn, logger)
}

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		Long:  `Apply, roll back or inspect the embedded PostgreSQL migrations against DATABASE_URL.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: withMigrator(func(cmd *cobra.Command, m schemaMigrator) error {
			if err := m.Up(); err != nil {
				return err
			}
			cmd.Println("Migrations applied")
			return nil
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: withMigrator(func(cmd *cobra.Command, m schemaMigrator) error {
			if err := m.Down(); err != nil {
				return err
			}
			cmd.Println("Migrations rolled back")
			return nil
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: withMigrator(func(cmd *cobra.Command, m schemaMigrator) error {
			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			if dirty {
				cmd.Printf("%d (dirty)\n", version)
				return nil
			}
			cmd.Printf("%d\n", version)
			return nil
		}),
	})

	return cmd
}

func withMigrator(run func(*cobra.Command, schemaMigrator) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cfg, logger, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		m, err := openMigrator(cfg.Postgres.DSN, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := m.Close(); err != nil {
				logger.Warn("close migrator", zap.Error(err))
			}
		}()
		return run(cmd, m)
	}
}
