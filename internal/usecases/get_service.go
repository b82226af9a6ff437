package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/servicehub/servicehub/internal/domain"
)

// GetServiceInteractor reads Services from the repository.
type GetServiceInteractor struct {
	deps   Deps
	output GetServiceOutputPort
}

var _ GetServiceInputPort = (*GetServiceInteractor)(nil)

// NewGetServiceInteractor wires the interactor to its presenter.
func NewGetServiceInteractor(deps Deps, output GetServiceOutputPort) *GetServiceInteractor {
	return &GetServiceInteractor{deps: deps.withDefaults(), output: output}
}

// GetService reports false when id is unknown or the lookup failed. Either
// way the presenter receives the error, NotFound carrying the repository message.
func (i *GetServiceInteractor) GetService(ctx context.Context, id uuid.UUID) (domain.Service, bool) {
	var found domain.Service
	err := i.deps.run(ctx, "get_service", func(ctx context.Context) error {
		s, err := i.deps.Repository.GetByID(ctx, id)
		if err != nil {
			return internal(err)
		}
		found = s
		return nil
	}, "service_id", id.String())

	if err != nil {
		i.output.PresentError(err)
		return domain.Service{}, false
	}

	i.output.PresentService(&found)
	return found, true
}

// GetAllServices returns every Service in insertion order. On failure the
// presenter gets the error and the result is empty.
func (i *GetServiceInteractor) GetAllServices(ctx context.Context) []domain.Service {
	var all []domain.Service
	err := i.deps.run(ctx, "get_all_services", func(ctx context.Context) error {
		list, err := i.deps.Repository.GetAll(ctx)
		if err != nil {
			return internal(err)
		}
		all = list
		return nil
	})

	if err != nil {
		i.output.PresentError(err)
		return []domain.Service{}
	}
	if all == nil {
		all = []domain.Service{}
	}

	i.deps.Gauge.SetServices(len(all))
	i.output.PresentServices(all)
	return all
}
