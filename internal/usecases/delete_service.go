package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/servicehub/servicehub/internal/domain"
)

// DeleteServiceInteractor removes a Service and retires its identifier.
type DeleteServiceInteractor struct {
	deps   Deps
	output DeleteServiceOutputPort
}

var _ DeleteServiceInputPort = (*DeleteServiceInteractor)(nil)

// NewDeleteServiceInteractor wires the interactor to its presenter.
func NewDeleteServiceInteractor(deps Deps, output DeleteServiceOutputPort) *DeleteServiceInteractor {
	return &DeleteServiceInteractor{deps: deps.withDefaults(), output: output}
}

// DeleteService reports whether a Service was removed.
func (i *DeleteServiceInteractor) DeleteService(ctx context.Context, id uuid.UUID) bool {
	err := i.deps.run(ctx, "delete_service", func(ctx context.Context) error {
		if _, err := i.deps.Repository.Delete(ctx, id); err != nil {
			return internal(err)
		}
		return nil
	}, "service_id", id.String())

	if err != nil {
		i.output.PresentDeletionError(err)
		return false
	}

	i.deps.refreshGauge()
	i.deps.announce(ctx, domain.EventServiceDeleted, domain.Service{ID: id})
	i.output.PresentDeletedService(id)
	return true
}
