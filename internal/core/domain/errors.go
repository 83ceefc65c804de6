package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrUnauthenticated    = errors.New("authentication required")

	// Self-service guards: an admin editing themselves out of the admin role
	// or deleting their own account is an authorization error, not bad input.
	ErrSelfRoleChange = errors.New("cannot change your own admin role")
	ErrSelfDelete     = errors.New("cannot delete your own account")
)

// ValidationError carries the rule message that failed; it maps to a 400 at
// the API boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError signals a duplicate email/username. It renders as 400 rather
// than 409 for compatibility with existing clients of this API.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
