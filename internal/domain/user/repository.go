package user

import "context"

// UserRepository defines read-only access to the seeded staff roster.
// Users are never created or mutated at runtime.
type UserRepository interface {
	// All returns every seeded user.
	All(ctx context.Context) ([]User, error)

	// GetByID retrieves a user by id, ErrUserNotFound when absent.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by exact (case-sensitive) email match,
	// ErrUserNotFound when absent.
	GetByEmail(ctx context.Context, email string) (User, error)
}
