// Package usecases implements the application's use-case interactors and the
// input and output ports they expose to, and consume from, the outer layers.
package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/servicehub/servicehub/internal/domain"
)

// CreateServiceInputPort is the entry point for creating a Service.
type CreateServiceInputPort interface {
	CreateService(ctx context.Context, name, description string) domain.Service
}

// GetServiceInputPort is the entry point for reading Services.
type GetServiceInputPort interface {
	GetService(ctx context.Context, id uuid.UUID) (domain.Service, bool)
	GetAllServices(ctx context.Context) []domain.Service
}

// UpdateServiceInputPort is the entry point for changing a Service.
type UpdateServiceInputPort interface {
	UpdateService(ctx context.Context, id uuid.UUID, in UpdateServiceInput) domain.Service
}

// DeleteServiceInputPort is the entry point for removing a Service.
type DeleteServiceInputPort interface {
	DeleteService(ctx context.Context, id uuid.UUID) bool
}

// CreateServiceOutputPort receives the outcome of CreateService.
type CreateServiceOutputPort interface {
	PresentCreatedService(s domain.Service)
	PresentCreationError(err error)
}

// GetServiceOutputPort receives the outcome of GetService and GetAllServices.
// PresentService is called with nil when there is nothing to show.
type GetServiceOutputPort interface {
	PresentService(s *domain.Service)
	PresentServices(list []domain.Service)
	PresentError(err error)
}

// UpdateServiceOutputPort receives the outcome of UpdateService.
type UpdateServiceOutputPort interface {
	PresentUpdatedService(s domain.Service)
	PresentUpdateError(err error)
}

// DeleteServiceOutputPort receives the outcome of DeleteService.
type DeleteServiceOutputPort interface {
	PresentDeletedService(id uuid.UUID)
	PresentDeletionError(err error)
}

// EventPublisher announces accepted changes to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, e domain.ServiceEvent) error
}

// ServicesGauge tracks how many Services are stored.
type ServicesGauge interface {
	SetServices(n int)
}
