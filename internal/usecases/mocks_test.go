package usecases

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/servicehub/servicehub/internal/domain"
)

// mockRepository is a map-backed repository that counts calls and can be
// told to fail.
type mockRepository struct {
	mu       sync.Mutex
	services map[uuid.UUID]domain.Service
	order    []uuid.UUID

	saveCalls   int
	saveErr     error
	getErr      error
	getAllErr   error
	updateErr   error
	deleteErr   error
	lastUpdated domain.Service
}

func newMockRepository() *mockRepository {
	return &mockRepository{services: make(map[uuid.UUID]domain.Service)}
}

func (m *mockRepository) Save(_ context.Context, s domain.Service) (domain.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++
	if m.saveErr != nil {
		return domain.Service{}, m.saveErr
	}
	m.services[s.ID] = s
	m.order = append(m.order, s.ID)
	return s, nil
}

func (m *mockRepository) GetByID(_ context.Context, id uuid.UUID) (domain.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return domain.Service{}, m.getErr
	}
	s, ok := m.services[id]
	if !ok {
		return domain.Service{}, domain.NewNotFoundError("Service with ID " + id.String() + " not found")
	}
	return s, nil
}

func (m *mockRepository) GetAll(_ context.Context) ([]domain.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	out := make([]domain.Service, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.services[id])
	}
	return out, nil
}

func (m *mockRepository) Update(_ context.Context, s domain.Service) (domain.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return domain.Service{}, m.updateErr
	}
	if _, ok := m.services[s.ID]; !ok {
		return domain.Service{}, domain.NewNotFoundError("Service with ID " + s.ID.String() + " not found")
	}
	m.services[s.ID] = s
	m.lastUpdated = s
	return s, nil
}

func (m *mockRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	if _, ok := m.services[id]; !ok {
		return false, domain.NewNotFoundError("Service with ID " + id.String() + " not found")
	}
	delete(m.services, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (m *mockRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.services)
}

func (m *mockRepository) seed(name string) domain.Service {
	s := domain.NewService(name, "seeded")
	m.services[s.ID] = s
	m.order = append(m.order, s.ID)
	return s
}

// mockPresenter records every call made through any output port.
type mockPresenter struct {
	created   *domain.Service
	updated   *domain.Service
	deleted   uuid.UUID
	service   *domain.Service
	services  []domain.Service
	err       error
	nilCalled bool
	calls     int
}

func (p *mockPresenter) PresentCreatedService(s domain.Service) { p.calls++; p.created = &s }
func (p *mockPresenter) PresentCreationError(err error)         { p.calls++; p.err = err }
func (p *mockPresenter) PresentService(s *domain.Service) {
	p.calls++
	p.service = s
	p.nilCalled = s == nil
}
func (p *mockPresenter) PresentServices(list []domain.Service) { p.calls++; p.services = list }
func (p *mockPresenter) PresentError(err error)                { p.calls++; p.err = err }
func (p *mockPresenter) PresentUpdatedService(s domain.Service) { p.calls++; p.updated = &s }
func (p *mockPresenter) PresentUpdateError(err error)          { p.calls++; p.err = err }
func (p *mockPresenter) PresentDeletedService(id uuid.UUID)    { p.calls++; p.deleted = id }
func (p *mockPresenter) PresentDeletionError(err error)        { p.calls++; p.err = err }

// mockPublisher collects published events and may fail.
type mockPublisher struct {
	events []domain.ServiceEvent
	err    error
}

func (p *mockPublisher) Publish(_ context.Context, e domain.ServiceEvent) error {
	p.events = append(p.events, e)
	return p.err
}

// mockGauge remembers the last value set.
type mockGauge struct {
	value int
	sets  int
}

func (g *mockGauge) SetServices(n int) { g.value = n; g.sets++ }

var errStorage = errors.New("disk on fire")
