package auth

import (
	"context"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/user"
)

// AuthService defines business logic for session handling
type AuthService interface {
	// Login verifies credentials and stores the matching user as the current
	// session. Returns ErrInvalidCredentials on any mismatch, leaving the
	// session unchanged.
	Login(ctx context.Context, req LoginRequest) (user.User, error)

	// Logout clears the current session. No side effects on other collections.
	Logout(ctx context.Context) error

	// CurrentUser returns the logged-in user, or nil when nobody is logged in.
	CurrentUser(ctx context.Context) (*user.User, error)
}
