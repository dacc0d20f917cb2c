package domain

import "errors"

// Sentinel errors shared across service and infrastructure layers. The HTTP
// layer maps each to exactly one status code in internal/api/error_handler.go.
var (
	// ErrInvalidInput covers missing or malformed request fields, including
	// unrecognised kind/userType enum values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmailTaken is returned when the storage-level email uniqueness
	// constraint rejects an insert. The constraint, not a pre-check, is the
	// arbiter: concurrent registrations for the same email race and the
	// loser receives this error.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is deliberately undifferentiated between
	// "no such email" and "wrong password".
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrRoleNotFound means no role is recorded for the given identity.
	ErrRoleNotFound = errors.New("role not found")

	// ErrRoleMissing means the role reference table lacks a role the service
	// depends on. Misconfiguration, not user error.
	ErrRoleMissing = errors.New("role reference data missing")

	// ErrAccountNotFound means no kind table owns the given identity or email.
	ErrAccountNotFound = errors.New("account not found")

	ErrForbidden = errors.New("access forbidden")
)
