// Package repository holds the storage adapters behind domain.ServiceRepository.
package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/servicehub/servicehub/internal/domain"
	"github.com/servicehub/servicehub/internal/logging"
	"github.com/servicehub/servicehub/internal/metrics"
)

// MemoryServiceRepository keeps Services in a map guarded by one RWMutex.
// Identifiers of deleted Services stay reserved for the repository's lifetime.
type MemoryServiceRepository struct {
	logger  *logging.Logger
	tracker metrics.Tracker

	mu       sync.RWMutex
	services map[uuid.UUID]domain.Service
	order    []uuid.UUID
	retired  map[uuid.UUID]struct{}
}

var _ domain.ServiceRepository = (*MemoryServiceRepository)(nil)

// NewMemoryServiceRepository creates an empty repository. tracker may be nil.
func NewMemoryServiceRepository(logger *logging.Logger, tracker metrics.Tracker) *MemoryServiceRepository {
	if tracker == nil {
		tracker = metrics.NopTracker{}
	}
	logger.Info("Initialized in-memory service repository")
	return &MemoryServiceRepository{
		logger:   logger,
		tracker:  tracker,
		services: make(map[uuid.UUID]domain.Service),
		retired:  make(map[uuid.UUID]struct{}),
	}
}

// Save stores s under s.ID
func (r *MemoryServiceRepository) Save(ctx context.Context, s domain.Service) (domain.Service, error) {
	log := r.logger.WithContext(ctx)
	err := r.tracker.Track("repository_save", func() error {
		r.mu.Lock()
		defer r.mu.Unlock()

		_, exists := r.services[s.ID]
		_, retired := r.retired[s.ID]
		if exists || retired {
			log.Error("Service already exists", "service_id", s.ID.String(), "name", s.Name)
			return domain.NewAlreadyExistsError(fmt.Sprintf("Service with ID %s already exists", s.ID))
		}

		r.services[s.ID] = s
		r.order = append(r.order, s.ID)
		log.Info("Saving service", "service_id", s.ID.String(), "name", s.Name)
		return nil
	})
	if err != nil {
		return domain.Service{}, err
	}
	return s, nil
}

// GetByID returns a copy of the stored Service
func (r *MemoryServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Service, error) {
	var found domain.Service
	err := r.tracker.Track("repository_get_by_id", func() error {
		r.mu.RLock()
		defer r.mu.RUnlock()

		s, ok := r.services[id]
		if !ok {
			r.logger.WithContext(ctx).Warn("Service not found", "service_id", id.String())
			return notFound(id)
		}
		found = s
		return nil
	})
	return found, err
}

// GetAll returns every stored Service in insertion order
func (r *MemoryServiceRepository) GetAll(ctx context.Context) ([]domain.Service, error) {
	var all []domain.Service
	err := r.tracker.Track("repository_get_all", func() error {
		r.mu.RLock()
		defer r.mu.RUnlock()

		all = make([]domain.Service, 0, len(r.order))
		for _, id := range r.order {
			all = append(all, r.services[id])
		}
		return nil
	})
	r.logger.WithContext(ctx).Debug("Fetched all services", "count", len(all))
	return all, err
}

// Update replaces the stored value at s.ID, keeping the stored CreatedAt
func (r *MemoryServiceRepository) Update(ctx context.Context, s domain.Service) (domain.Service, error) {
	log := r.logger.WithContext(ctx)
	err := r.tracker.Track("repository_update", func() error {
		r.mu.Lock()
		defer r.mu.Unlock()

		stored, ok := r.services[s.ID]
		if !ok {
			log.Error("Service not found for update", "service_id", s.ID.String())
			return notFound(s.ID)
		}

		// CreatedAt is fixed at creation and UpdatedAt never precedes it.
		s.CreatedAt = stored.CreatedAt
		if s.UpdatedAt.Before(s.CreatedAt) {
			s.UpdatedAt = s.CreatedAt
		}
		r.services[s.ID] = s
		log.Info("Updating service", "service_id", s.ID.String(), "name", s.Name)
		return nil
	})
	if err != nil {
		return domain.Service{}, err
	}
	return s, nil
}

// Delete removes the entry and retires its identifier
func (r *MemoryServiceRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	log := r.logger.WithContext(ctx)
	err := r.tracker.Track("repository_delete", func() error {
		r.mu.Lock()
		defer r.mu.Unlock()

		if _, ok := r.services[id]; !ok {
			log.Warn("Service not found for deletion", "service_id", id.String())
			return notFound(id)
		}

		delete(r.services, id)
		r.retired[id] = struct{}{}
		for i, oid := range r.order {
			if oid == id {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
		log.Info("Deleting service", "service_id", id.String())
		return nil
	})
	return err == nil, err
}

// Count returns the number of stored Services
func (r *MemoryServiceRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.services)
}

func notFound(id uuid.UUID) error {
	return domain.NewNotFoundError(fmt.Sprintf("Service with ID %s not found", id))
}
