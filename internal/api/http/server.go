package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/dental-records/internal/observability"
)

// ServerOptions configures NewApp.
type ServerOptions struct {
	AppName        string
	Logger         *zap.Logger
	Metrics        *observability.Metrics
	RequestTimeout time.Duration
	Routes         RouteConfig
}

// NewApp builds the fiber application with middlewares and routes attached.
func NewApp(opts ServerOptions) *fiber.App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               opts.AppName,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
		ReadTimeout:           opts.RequestTimeout,
		WriteTimeout:          opts.RequestTimeout,
	})
	RegisterMiddlewares(app, logger, opts.Metrics, opts.RequestTimeout)

	routes := opts.Routes
	if routes.Metrics == nil {
		routes.Metrics = opts.Metrics
	}
	RegisterRoutes(app, routes)
	return app
}
