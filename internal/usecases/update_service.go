package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/servicehub/servicehub/internal/domain"
)

// UpdateServiceInput carries the fields to change. Nil fields are kept.
type UpdateServiceInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// UpdateServiceInteractor applies a partial change to a stored Service.
type UpdateServiceInteractor struct {
	deps   Deps
	output UpdateServiceOutputPort
}

var _ UpdateServiceInputPort = (*UpdateServiceInteractor)(nil)

// NewUpdateServiceInteractor wires the interactor to its presenter.
func NewUpdateServiceInteractor(deps Deps, output UpdateServiceOutputPort) *UpdateServiceInteractor {
	return &UpdateServiceInteractor{deps: deps.withDefaults(), output: output}
}

// UpdateService returns the updated Service or the zero Service on failure.
// The merged name and description are validated with the creation rules.
func (i *UpdateServiceInteractor) UpdateService(ctx context.Context, id uuid.UUID, in UpdateServiceInput) domain.Service {
	var updated domain.Service
	err := i.deps.run(ctx, "update_service", func(ctx context.Context) error {
		log := i.deps.Logger.WithContext(ctx)

		current, err := i.deps.Repository.GetByID(ctx, id)
		if err != nil {
			return internal(err)
		}

		if in.Name != nil {
			current.Name = *in.Name
		}
		if in.Description != nil {
			current.Description = *in.Description
		}
		if in.IsActive != nil {
			current.IsActive = *in.IsActive
		}
		if err := domain.Validate(current.Name, current.Description); err != nil {
			log.Warn("Service validation failed", "error", err)
			return err
		}
		current.Touch(time.Now().UTC())

		saved, err := i.deps.Repository.Update(ctx, current)
		if err != nil {
			log.Error("Failed to update service", "error", err)
			return internal(err)
		}
		updated = saved
		return nil
	}, "service_id", id.String())

	if err != nil {
		i.output.PresentUpdateError(err)
		return domain.Service{}
	}

	i.deps.announce(ctx, domain.EventServiceUpdated, updated)
	i.output.PresentUpdatedService(updated)
	return updated
}
