package domain

import (
	"context"

	"github.com/google/uuid"
)

// ServiceRepository owns the stored Services. Implementations return copies.
type ServiceRepository interface {
	// Save stores s under s.ID. Fails with ErrAlreadyExists if the ID was ever used.
	Save(ctx context.Context, s Service) (Service, error)

	// GetByID fails with ErrNotFound if nothing is stored under id.
	GetByID(ctx context.Context, id uuid.UUID) (Service, error)

	// GetAll returns every stored Service. The slice is never nil.
	GetAll(ctx context.Context) ([]Service, error)

	// Update replaces the stored value. Fails with ErrNotFound if absent.
	Update(ctx context.Context, s Service) (Service, error)

	// Delete removes the entry and reports true. Fails with ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Count returns the number of stored Services.
	Count() int
}
