package usecases

import (
	"context"

	"github.com/servicehub/servicehub/internal/domain"
)

// CreateServiceInteractor validates input and stores a new Service.
type CreateServiceInteractor struct {
	deps   Deps
	output CreateServiceOutputPort
}

var _ CreateServiceInputPort = (*CreateServiceInteractor)(nil)

// NewCreateServiceInteractor wires the interactor to its presenter.
func NewCreateServiceInteractor(deps Deps, output CreateServiceOutputPort) *CreateServiceInteractor {
	return &CreateServiceInteractor{deps: deps.withDefaults(), output: output}
}

// CreateService returns the stored Service, or the zero Service after
// presenting the failure.
func (i *CreateServiceInteractor) CreateService(ctx context.Context, name, description string) domain.Service {
	var created domain.Service
	err := i.deps.run(ctx, "create_service", func(ctx context.Context) error {
		log := i.deps.Logger.WithContext(ctx)

		if err := domain.Validate(name, description); err != nil {
			log.Warn("Service validation failed", "name_length", len(name), "error", err)
			return err
		}

		saved, err := i.deps.Repository.Save(ctx, domain.NewService(name, description))
		if err != nil {
			log.Error("Failed to save service", "error", err)
			return internal(err)
		}
		created = saved
		return nil
	}, "service_name", name)

	if err != nil {
		i.output.PresentCreationError(err)
		return domain.Service{}
	}

	i.deps.refreshGauge()
	i.deps.announce(ctx, domain.EventServiceCreated, created)
	i.output.PresentCreatedService(created)
	return created
}
