package auth

import "errors"

// Auth domain errors
var (
	// ErrInvalidCredentials deliberately does not distinguish an unknown
	// email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrNotAuthenticated = errors.New("no user is logged in")
)
