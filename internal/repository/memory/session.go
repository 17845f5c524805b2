package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/snapshot"
)

// SessionRepository holds the single current-session slot, persisted under
// the currentUser key. The stored record carries no password hash.
type SessionRepository struct {
	store snapshot.Store

	mu      sync.RWMutex
	current *user.User
}

// NewSessionRepository rehydrates the session from the snapshot store. A
// malformed payload is discarded with a warning and the process starts
// logged out.
func NewSessionRepository(ctx context.Context, store snapshot.Store) (*SessionRepository, error) {
	r := &SessionRepository{store: store}

	payload, err := store.Get(ctx, snapshot.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to load session snapshot: %w", err)
	}
	if payload == nil {
		return r, nil
	}

	var u user.User
	if err := json.Unmarshal(payload, &u); err != nil || u.ID == "" {
		slog.Warn("discarding malformed session snapshot", "key", snapshot.KeyCurrentUser, "error", err)
		return r, nil
	}
	r.current = &u
	return r, nil
}

// Current implements auth.SessionRepository.
func (r *SessionRepository) Current(ctx context.Context) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return nil, nil
	}
	u := *r.current
	return &u, nil
}

// Set implements auth.SessionRepository.
func (r *SessionRepository) Set(ctx context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	payload, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := r.store.Put(ctx, snapshot.KeyCurrentUser, payload); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	r.current = &u
	return nil
}

// Clear implements auth.SessionRepository. The stored record is removed
// entirely so a fresh start yields no session.
func (r *SessionRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(ctx, snapshot.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	r.current = nil
	return nil
}
