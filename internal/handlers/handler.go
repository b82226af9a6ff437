package handlers

import (
	"time"

	"github.com/servicehub/servicehub/internal/config"
	"github.com/servicehub/servicehub/internal/domain"
	"github.com/servicehub/servicehub/internal/logging"
	"github.com/servicehub/servicehub/internal/metrics"
	"github.com/servicehub/servicehub/internal/presenters"
	"github.com/servicehub/servicehub/internal/usecases"
)

// Handler contains all HTTP handlers. It holds the long-lived collaborators
// and builds a presenter and interactor for every request.
type Handler struct {
	logger    *logging.Logger
	deps      usecases.Deps
	version   string
	events    string
	startTime time.Time
}

// Options are the optional collaborators of a Handler
type Options struct {
	Tracker metrics.Tracker
	Gauge   usecases.ServicesGauge
	Events  usecases.EventPublisher
	// EventsBackend names the events backend in /health/detailed
	EventsBackend string
}

// New creates a new handler instance
func New(logger *logging.Logger, repo domain.ServiceRepository, app config.AppConfig, opts Options) *Handler {
	backend := opts.EventsBackend
	if backend == "" {
		backend = "none"
	}

	return &Handler{
		logger: logger,
		deps: usecases.Deps{
			Repository: repo,
			Logger:     logger,
			Tracker:    opts.Tracker,
			Gauge:      opts.Gauge,
			Events:     opts.Events,
		},
		version:   app.Version,
		events:    backend,
		startTime: time.Now(),
	}
}

func (h *Handler) newPresenter() *presenters.ServicePresenter {
	return presenters.NewServicePresenter()
}
