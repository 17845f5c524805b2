package auth

import (
	"context"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/user"
)

// SessionRepository owns the single current-session slot. The session is
// persisted on every change; clearing it removes the stored record entirely,
// so a fresh start with no prior login yields no session.
type SessionRepository interface {
	// Current returns the logged-in user, or nil when nobody is logged in.
	Current(ctx context.Context) (*user.User, error)

	// Set stores u as the current session user.
	Set(ctx context.Context, u user.User) error

	// Clear removes the current session user.
	Clear(ctx context.Context) error
}
