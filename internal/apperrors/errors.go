// Package apperrors defines the closed set of error kinds surfaced by the
// service layer. Every error returned by a service wraps exactly one kind;
// callers match with errors.Is and must not depend on message text.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation covers malformed or out-of-bounds input: measurement
	// fields, missing registration fields, bad email, password length.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized covers operations attempted by a non-owning user,
	// such as deleting another user's routine or recording a measurement
	// against another user's account.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers references to absent entities.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers uniqueness violations, e.g. duplicate email.
	ErrConflict = errors.New("conflict")

	// ErrStorage covers failures raised by the underlying store. Raw
	// storage errors never cross the service boundary unwrapped.
	ErrStorage = errors.New("storage failure")
)

// Wrap ties an error to one of the kinds above while keeping the cause
// in the chain for errors.Is / errors.As.
func Wrap(kind error, cause error) error {
	if cause == nil {
		return kind
	}
	return fmt.Errorf("%w: %w", kind, cause)
}

// New builds a kinded error with a human-readable message.
func New(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
