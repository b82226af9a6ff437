package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/servicehub/servicehub/internal/domain"
	"github.com/servicehub/servicehub/internal/logging"
	"github.com/servicehub/servicehub/internal/metrics"
)

// publishTimeout bounds how long a use case waits on the event backend.
const publishTimeout = 5 * time.Second

// Deps are the long-lived collaborators shared by every interactor. Only
// Repository is required.
type Deps struct {
	Repository domain.ServiceRepository
	Logger     *logging.Logger
	Tracker    metrics.Tracker
	Gauge      ServicesGauge
	Events     EventPublisher
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = logging.Global()
	}
	if d.Tracker == nil {
		d.Tracker = metrics.NopTracker{}
	}
	if d.Gauge == nil {
		d.Gauge = metrics.NopTracker{}
	}
	return d
}

// run wraps a use case in the operation log context and the tracker.
func (d Deps) run(ctx context.Context, name string, fn func(ctx context.Context) error, fields ...interface{}) error {
	ctx, finish := logging.Operation(ctx, d.Logger, name, fields...)
	err := d.Tracker.Track(name, func() error { return fn(ctx) })
	finish(err)
	return err
}

// announce publishes e. Failures are logged and never fail the use case.
func (d Deps) announce(ctx context.Context, t domain.EventType, s domain.Service) {
	if d.Events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := d.Events.Publish(ctx, domain.NewServiceEvent(t, s)); err != nil {
		d.Logger.WithContext(ctx).Warn("Failed to publish service event",
			"event", string(t), "service_id", s.ID.String(), "error", err)
	}
}

func (d Deps) refreshGauge() {
	d.Gauge.SetServices(d.Repository.Count())
}

// internal wraps unexpected failures, leaving domain errors untouched.
func internal(err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return domain.NewInternalError(err)
}
