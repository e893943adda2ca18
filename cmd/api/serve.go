package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/dental-records/internal/api/http"
	"github.com/spec-kit/dental-records/internal/api/http/handlers"
	"github.com/spec-kit/dental-records/internal/auth"
	"github.com/spec-kit/dental-records/internal/config"
	"github.com/spec-kit/dental-records/internal/observability"
	"github.com/spec-kit/dental-records/internal/persistence"
	"github.com/spec-kit/dental-records/internal/repository"
	"github.com/spec-kit/dental-records/internal/service"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Connect to PostgreSQL and Redis, apply pending migrations when
POSTGRES_RUN_MIGRATIONS is set, and serve the HTTP API until SIGINT or SIGTERM.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, logger, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Error("failed to connect postgres", zap.Error(err))
		return err
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(cfg.Postgres.DSN, logger); err != nil {
			logger.Error("failed to run migrations", zap.Error(err))
			return err
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	app := buildApp(cfg, logger, pg, redis)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.App.Addr()))
		errCh <- app.Listen(cfg.App.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("graceful shutdown incomplete", zap.Error(err))
	}
	return nil
}

func buildApp(cfg *config.Config, logger *zap.Logger, pg *persistence.Postgres, redis *persistence.Redis) *fiber.App {
	accountRepo := repository.NewAccountRepository(pg.Pool)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		Accounts: accountRepo,
		Sessions: auth.NewRedisSessionCache(redis.Client),
		Hasher:   auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		Tokens:   auth.NewTokenGenerator(),
	}, logger)

	patientService := service.NewPatientService(service.PatientDependencies{
		PatientRepo: repository.NewPatientRepository(pg.Pool),
		BiodataRepo: repository.NewBiodataRepository(pg.Pool),
		PlannerRepo: repository.NewRecordPlannerRepository(pg.Pool),
		ImagingRepo: repository.NewImagingRepository(pg.Pool),
		VisitRepo:   repository.NewVisitRepository(pg.Pool),
	})

	metrics := observability.NewMetrics("dental")
	cookie := auth.CookieSettings{
		Name:   cfg.Auth.SessionCookieName,
		Secure: cfg.App.IsProduction(),
		TTL:    cfg.Auth.SessionTTL(),
	}
	authHandler := handlers.NewAuthHandler(authService, cookie, metrics)

	return httptransport.NewApp(httptransport.ServerOptions{
		AppName:        cfg.App.Name,
		Logger:         logger,
		Metrics:        metrics,
		RequestTimeout: cfg.App.RequestTimeout(),
		Routes: httptransport.RouteConfig{
			Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
				"postgres": pg,
				"redis":    redis,
			}),
			Auth:           authHandler,
			Patients:       handlers.NewPatientsHandler(patientService),
			AuthMiddleware: auth.NewSessionMiddleware(authHandler, cookie),
		},
	})
}
