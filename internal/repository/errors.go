// Package repository defines error types that are reused across the
// user store implementations. These sentinel values allow higher layers
// such as handlers to distinguish between different failure scenarios.
// For example, ErrUsernameExists indicates that a create or rename would
// violate the unique username constraint, while ErrNotFound signals that
// the requested record does not exist.
package repository

import "errors"

// ErrUsernameExists is returned when an insert or rename collides with
// an existing username. Handlers should translate this into an HTTP 400
// response.
var ErrUsernameExists = errors.New("username already exists")

// ErrNotFound is returned when no record matches the requested id or
// username. Handlers should translate this into an HTTP 404 response,
// except during login where it must be indistinguishable from a bad
// password.
var ErrNotFound = errors.New("user not found")
