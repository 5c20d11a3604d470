package domain

import (
	"errors"
	"strings"
)

// Error categories. The HTTP layer maps each one to a status code, so every
// error leaving a use case should wrap exactly one of them.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)

// ErrInvalidCredentials is returned by login for an unknown username and for
// a wrong password alike.
var ErrInvalidCredentials = &DomainError{Base: ErrUnauthorized, Message: "invalid credentials"}

// DomainError is a categorised error with a human readable message. Field is
// set on validation failures and names the offending form field.
type DomainError struct {
	Base    error
	Message string
	Field   string
}

func (e *DomainError) Error() string {
	var b strings.Builder
	b.WriteString(e.Base.Error())
	if e.Field != "" {
		b.WriteString(" [" + e.Field + "]")
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	return b.String()
}

func (e *DomainError) Unwrap() error { return e.Base }

func categorised(base error, field, message string) *DomainError {
	return &DomainError{Base: base, Field: field, Message: message}
}

// NewNotFoundError reports that the named resource does not exist.
func NewNotFoundError(resource string) *DomainError {
	return categorised(ErrNotFound, "", resource)
}

// NewValidationError reports that field holds an unacceptable value.
func NewValidationError(field, message string) *DomainError {
	return categorised(ErrInvalidInput, field, message)
}

func NewConflictError(message string) *DomainError {
	return categorised(ErrConflict, "", message)
}

func NewUnauthorizedError(message string) *DomainError {
	return categorised(ErrUnauthorized, "", message)
}

func IsNotFound(err error) bool        { return errors.Is(err, ErrNotFound) }
func IsValidationError(err error) bool { return errors.Is(err, ErrInvalidInput) }
func IsConflict(err error) bool        { return errors.Is(err, ErrConflict) }
func IsUnauthorized(err error) bool    { return errors.Is(err, ErrUnauthorized) }
