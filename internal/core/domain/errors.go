package domain

import "errors"

// Sentinel errors for the whole service. The HTTP layer maps each one to a
// fixed status code and message; handlers and services never build HTTP
// responses themselves.
//
// ErrInvalidCredentials deliberately covers both "unknown identifier" and
// "wrong password", and ErrInvalidToken covers both "expired" and
// "tampered". Callers must not be able to tell those cases apart.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")
	ErrAccountNotFound    = errors.New("account not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrRoleExists         = errors.New("role already exists")
)
