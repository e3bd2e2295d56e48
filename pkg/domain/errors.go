package domain

import "errors"

// Common domain errors. Package-level errors wrap one of these with %w so the
// API layer can classify them with errors.Is.
var (
	// ErrNotFound is returned when a requested resource is not found or is
	// owned by another user
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrConflict is returned when an operation would break a referential rule
	ErrConflict = errors.New("conflict")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when a request carries no valid access token
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when a refresh token is invalid or revoked
	ErrForbidden = errors.New("forbidden")
	// ErrUnavailable is returned when a backing store times out or is unreachable
	ErrUnavailable = errors.New("service unavailable")
)
