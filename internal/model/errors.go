package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both genuinely absent records and records owned
	// by another user, so callers cannot probe for existence.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned uniformly for missing, malformed,
	// forged, revoked and wrong-purpose credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrEmailTaken signals a signup conflict on the unique email.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidCredentials signals a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports malformed or missing required input.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}
