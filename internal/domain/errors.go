package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when a write is attempted without a resolved actor
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a record is absent or owned by another actor.
	// Both cases share the same error so callers cannot probe for existence.
	ErrNotFound = errors.New("not found")

	// ErrValidation is the sentinel wrapped by every ValidationError
	ErrValidation = errors.New("validation failed")

	// ErrInvalidArgument is returned by internal components that receive input
	// their caller was expected to have validated
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError describes a rejected user input
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError builds a ValidationError for field with a formatted message
func NewValidationError(field string, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StoreError wraps a failure of the underlying transactional store
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError wraps err as a StoreError for operation op.
// A nil err yields nil, and domain errors pass through untouched.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInvalidArgument) {
		return err
	}
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err carries a StoreError
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
