package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a unique constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnknownUser indicates the caller's identity did not resolve to a user.
	ErrUnknownUser = errors.New("unknown user")
	// ErrInvalidInput indicates a request failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStorage indicates the store rejected or could not run a statement.
	ErrStorage = errors.New("storage failure")
)

// StorageError wraps a driver error so callers can match both ErrStorage and
// the underlying cause.
func StorageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

// Invalid builds an ErrInvalidInput with a human readable reason.
func Invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
