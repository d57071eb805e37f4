package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, negative meter reading).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a create collides with an existing resource
// (e.g. registering an email that is already taken).
// Handlers should map this to HTTP 409 Conflict.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized is returned when the caller has no valid session: missing
// or malformed token, expired token, or bad login credentials.
// Handlers should map this to HTTP 401 Unauthorized.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden is returned when the caller is authenticated but lacks the
// role required for the operation.
// Handlers should map this to HTTP 403 Forbidden.
var ErrForbidden = errors.New("forbidden")
