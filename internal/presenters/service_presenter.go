// Package presenters turns use-case results into transport models.
package presenters

import (
	"time"

	"github.com/google/uuid"

	"github.com/servicehub/servicehub/internal/domain"
	"github.com/servicehub/servicehub/internal/models"
	"github.com/servicehub/servicehub/internal/usecases"
)

// MsgServiceNotFound is recorded when there is no Service to present.
const MsgServiceNotFound = "Service not found"

// ServicePresenter keeps the outcome of one request. Build a new one per request.
type ServicePresenter struct {
	Response  *models.ServiceResponse
	Responses []models.ServiceResponse
	DeletedID uuid.UUID
	Error     string
	ErrorKind domain.ErrorKind
}

var (
	_ usecases.CreateServiceOutputPort = (*ServicePresenter)(nil)
	_ usecases.GetServiceOutputPort    = (*ServicePresenter)(nil)
	_ usecases.UpdateServiceOutputPort = (*ServicePresenter)(nil)
	_ usecases.DeleteServiceOutputPort = (*ServicePresenter)(nil)
)

// NewServicePresenter returns an empty presenter.
func NewServicePresenter() *ServicePresenter {
	return &ServicePresenter{}
}

// HasError reports whether a failure was presented.
func (p *ServicePresenter) HasError() bool {
	return p.Error != ""
}

func (p *ServicePresenter) PresentCreatedService(s domain.Service) {
	p.present(s)
}

func (p *ServicePresenter) PresentCreationError(err error) {
	p.fail(err)
}

// PresentService records s, or a not-found failure when s is nil.
func (p *ServicePresenter) PresentService(s *domain.Service) {
	if s == nil {
		p.Response = nil
		p.Error = MsgServiceNotFound
		p.ErrorKind = domain.KindNotFound
		return
	}
	p.present(*s)
}

func (p *ServicePresenter) PresentServices(list []domain.Service) {
	p.Responses = make([]models.ServiceResponse, 0, len(list))
	for _, s := range list {
		p.Responses = append(p.Responses, ToResponse(s))
	}
	p.Error = ""
	p.ErrorKind = ""
}

func (p *ServicePresenter) PresentError(err error) {
	p.fail(err)
}

func (p *ServicePresenter) PresentUpdatedService(s domain.Service) {
	p.present(s)
}

func (p *ServicePresenter) PresentUpdateError(err error) {
	p.fail(err)
}

func (p *ServicePresenter) PresentDeletedService(id uuid.UUID) {
	p.DeletedID = id
	p.Response = nil
	p.Error = ""
	p.ErrorKind = ""
}

func (p *ServicePresenter) PresentDeletionError(err error) {
	p.fail(err)
}

func (p *ServicePresenter) present(s domain.Service) {
	r := ToResponse(s)
	p.Response = &r
	p.Error = ""
	p.ErrorKind = ""
}

func (p *ServicePresenter) fail(err error) {
	p.Response = nil
	if err == nil {
		p.Error = domain.NewInternalError(nil).Error()
		p.ErrorKind = domain.KindInternal
		return
	}
	p.Error = err.Error()
	p.ErrorKind = domain.KindOf(err)
}

// ToResponse converts a Service into its wire shape.
func ToResponse(s domain.Service) models.ServiceResponse {
	return models.ServiceResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   s.UpdatedAt.UTC().Format(time.RFC3339Nano),
		IsActive:    s.IsActive,
	}
}
