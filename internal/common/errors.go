// Package common defines shared constants and sentinel errors used across
// client and server layers of teamboard. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorStorage       = errors.New("storage failure")

	// Service-level errors.
	ErrorInternal        = errors.New("internal error")
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrorForbidden       = errors.New("forbidden")

	// Validation errors.
	ErrorValidation         = errors.New("validation error")
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)

// ForbiddenError reports that an authenticated user lacks the role
// relationship an operation requires. Reason is meant for the end user.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return "forbidden: " + e.Reason
}

// Is makes errors.Is(err, ErrorForbidden) hold.
func (e *ForbiddenError) Is(target error) bool {
	return target == ErrorForbidden
}

// NewForbidden is a shorthand for &ForbiddenError{Reason: reason}.
func NewForbidden(reason string) error {
	return &ForbiddenError{Reason: reason}
}

// ValidationError carries a machine-readable code and a localized message
// for a rejected form. Nothing is committed when it is returned.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrorValidation) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrorValidation
}
