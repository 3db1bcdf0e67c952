// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow handlers to distinguish
// failure scenarios without string matching: ErrEmailExists maps to a 409,
// the not-found values to 404 (or, for ErrProfileNotFound, to the forced
// sign-out recovery path in the identity middleware).
package repository

import "errors"

// ErrEmailExists is returned when credential creation collides with an
// existing email. Handlers translate this into "email already in use".
var ErrEmailExists = errors.New("email already exists")

// ErrCaseNotFound is returned when a case id does not resolve to a row.
var ErrCaseNotFound = errors.New("case not found")

// ErrUserNotFound is returned when a user id or email does not resolve to
// a credential row.
var ErrUserNotFound = errors.New("user not found")

// ErrProfileNotFound is returned when a credential exists but its profile
// row is missing. This is the inconsistent-account state: the identity
// middleware recovers by forcing sign-out rather than treating it as fatal.
var ErrProfileNotFound = errors.New("profile not found")
