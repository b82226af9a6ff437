// Package events publishes service lifecycle events to a message broker.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/servicehub/servicehub/internal/domain"
)

// Publisher sends lifecycle events to a backend
type Publisher interface {
	// Publish encodes e and sends it to <prefix>.<event type>
	Publish(ctx context.Context, e domain.ServiceEvent) error

	// Close releases the backend connection
	Close() error
}

// Message is the JSON wire form of a domain.ServiceEvent
type Message struct {
	Type       string          `json:"type"`
	ServiceID  string          `json:"service_id"`
	Service    *ServicePayload `json:"service,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// ServicePayload is the service snapshot carried by created and updated events
type ServicePayload struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	IsActive    bool      `json:"is_active"`
}

// NewMessage converts e to its wire form. Deletions carry no payload.
func NewMessage(e domain.ServiceEvent) Message {
	m := Message{
		Type:       string(e.Type),
		ServiceID:  e.ServiceID.String(),
		OccurredAt: e.OccurredAt,
	}
	if !e.Service.IsZero() && e.Type != domain.EventServiceDeleted {
		m.Service = &ServicePayload{
			ID:          e.Service.ID.String(),
			Name:        e.Service.Name,
			Description: e.Service.Description,
			CreatedAt:   e.Service.CreatedAt,
			UpdatedAt:   e.Service.UpdatedAt,
			IsActive:    e.Service.IsActive,
		}
	}
	return m
}

// Encode returns the JSON body published for e
func Encode(e domain.ServiceEvent) ([]byte, error) {
	data, err := json.Marshal(NewMessage(e))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s event: %w", e.Type, err)
	}
	return data, nil
}

// Decode parses a published body
func Decode(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, fmt.Errorf("failed to decode event: %w", err)
	}
	return m, nil
}

// Subject builds the subject or topic name for an event type
func Subject(prefix string, t domain.EventType) string {
	if prefix == "" {
		return string(t)
	}
	return prefix + "." + string(t)
}
