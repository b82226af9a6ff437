// Package domain holds the Service entity, the repository port and the
// closed set of error kinds shared by every layer above it.
package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Field bounds enforced before a Service is persisted.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

// Service is the core domain entity.
type Service struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	IsActive    bool
}

// NewService stamps a fresh identifier and creation timestamps.
func NewService(name, description string) Service {
	now := time.Now().UTC()
	return Service{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsActive:    true,
	}
}

// IsZero reports whether s is the empty sentinel returned by failed use cases.
func (s Service) IsZero() bool {
	return s.ID == uuid.Nil
}

// Touch refreshes UpdatedAt, never moving it before CreatedAt.
func (s *Service) Touch(now time.Time) {
	now = now.UTC()
	if now.Before(s.CreatedAt) {
		now = s.CreatedAt
	}
	s.UpdatedAt = now
}

// Validate checks the name and description bounds, counted in characters.
// The first failure wins.
func Validate(name, description string) error {
	if name == "" {
		return NewValidationError("Service name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return NewValidationError("Service name too long")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return NewValidationError("Service description too long")
	}
	return nil
}
