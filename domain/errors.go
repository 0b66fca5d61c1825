package domain

import (
	"errors"
	"fmt"
)

var (
	ErrModelNotConfigured = errors.New("text model not configured")
	ErrEmptyResponse      = errors.New("empty response from text model")
)

// ValidationError marks an incomplete or malformed profile.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s %s", e.Field, e.Reason)
}

// DomainError is an internal invariant violation. It indicates a bug in the
// rules, never bad user input.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// CapabilityError wraps a failure of the external text-generation model.
type CapabilityError struct {
	Op  string
	Err error
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("text model %s: %v", e.Op, e.Err)
}

func (e *CapabilityError) Unwrap() error {
	return e.Err
}
