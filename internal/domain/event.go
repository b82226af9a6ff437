package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a change in a Service's lifecycle.
type EventType string

const (
	EventServiceCreated EventType = "created"
	EventServiceUpdated EventType = "updated"
	EventServiceDeleted EventType = "deleted"
)

// ServiceEvent is emitted after the repository accepted a change.
// Service is the zero value for deletions.
type ServiceEvent struct {
	Type       EventType
	ServiceID  uuid.UUID
	Service    Service
	OccurredAt time.Time
}

// NewServiceEvent stamps the event time.
func NewServiceEvent(t EventType, s Service) ServiceEvent {
	return ServiceEvent{
		Type:       t,
		ServiceID:  s.ID,
		Service:    s,
		OccurredAt: time.Now().UTC(),
	}
}
