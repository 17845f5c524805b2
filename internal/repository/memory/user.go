package memory

import (
	"context"
	"sync"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/user"
)

// UserRepository serves the seeded roster. Users live for the duration of
// the process and are never persisted; the seed is re-applied on every
// start.
type UserRepository struct {
	mu    sync.RWMutex
	users []user.User
}

func NewUserRepository(seed []user.User) *UserRepository {
	users := make([]user.User, len(seed))
	copy(users, seed)
	return &UserRepository{users: users}
}

// All implements user.UserRepository.
func (r *UserRepository) All(ctx context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// GetByID implements user.UserRepository.
func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

// GetByEmail implements user.UserRepository. The match is exact and
// case-sensitive.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}
