package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/servicehub/servicehub/internal/config"
	"github.com/servicehub/servicehub/internal/domain"
	"github.com/servicehub/servicehub/internal/events"
	"github.com/servicehub/servicehub/internal/handlers"
	"github.com/servicehub/servicehub/internal/logging"
	"github.com/servicehub/servicehub/internal/metrics"
	"github.com/servicehub/servicehub/internal/middleware"
)

// Deps are the process-wide collaborators the routes are built on.
// Collector, Registry and Events may be nil.
type Deps struct {
	Repository domain.ServiceRepository
	Collector  *metrics.Collector
	Registry   *prometheus.Registry
	Events     events.Publisher
}

// Setup configures all routes and middlewares
func Setup(app *fiber.App, logger *logging.Logger, deps Deps, cfg config.Config) *handlers.Handler {
	opts := handlers.Options{EventsBackend: cfg.Events.Type}
	if deps.Collector != nil {
		opts.Tracker = deps.Collector
		opts.Gauge = deps.Collector
	}
	if deps.Events != nil {
		opts.Events = deps.Events
	}

	h := handlers.New(logger, deps.Repository, cfg.App, opts)

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.Joined(cfg.CORS.AllowOrigins),
		AllowMethods:     config.Joined(cfg.CORS.AllowMethods),
		AllowHeaders:     config.Joined(cfg.CORS.AllowHeaders),
		AllowCredentials: cfg.CORS.AllowCredentials,
		ExposeHeaders:    logging.RequestIDHeader,
	}))
	app.Use(logging.FiberMiddleware(logger, logging.MiddlewareConfig{
		SkipPaths: []string{"/health", "/health/detailed", cfg.Metrics.Path},
	}))
	if deps.Collector != nil {
		app.Use(metrics.FiberMiddleware(deps.Collector))
	}

	// Health checks
	app.Get("/health", h.Health)
	app.Get("/health/detailed", h.HealthDetailed)

	// Prometheus scrape endpoint
	if cfg.Metrics.Enabled && deps.Registry != nil {
		app.Get(cfg.Metrics.Path, metrics.Handler(deps.Registry))
	}

	// Service Management Routes
	v1 := app.Group("/v1")
	v1.Post("/services", h.CreateService)
	v1.Get("/services", h.ListServices)
	v1.Get("/services/:id", h.GetService)
	v1.Put("/services/:id", h.UpdateService)
	v1.Delete("/services/:id", h.DeleteService)

	// 404 handler
	app.Use(h.NotFound)

	return h
}

// New creates a new Fiber app with configuration
func New(logger *logging.Logger, deps Deps, cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	Setup(app, logger, deps, cfg)

	return app
}
