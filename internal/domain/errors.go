package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failures a use case can report.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindNotFound      ErrorKind = "not_found"
	KindAlreadyExists ErrorKind = "already_exists"
	KindInternal      ErrorKind = "internal"
)

// Sentinels for errors.Is checks at call sites.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInternal      = errors.New("internal error")
)

// Error is a domain failure carrying its kind and a human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel that corresponds to the error kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrAlreadyExists:
		return e.Kind == KindAlreadyExists
	case ErrInternal:
		return e.Kind == KindInternal
	}
	return false
}

// NewValidationError creates a validation failure
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewNotFoundError creates a lookup miss
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewAlreadyExistsError creates a duplicate identifier failure
func NewAlreadyExistsError(message string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: message}
}

// NewInternalError wraps an unexpected failure, keeping the original message.
func NewInternalError(err error) *Error {
	msg := "Internal error"
	if err != nil {
		msg = fmt.Sprintf("Internal error: %s", err.Error())
	}
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns the kind of err. Anything that is not a domain error is internal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
