package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/timeclock"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/snapshot"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/validator"
)

// TimeEntryRepository keeps the time entry collection in memory and writes
// it through to the timeEntries snapshot key after every mutation.
type TimeEntryRepository struct {
	store snapshot.Store

	mu      sync.RWMutex
	entries []timeclock.TimeEntry
}

// NewTimeEntryRepository rehydrates from the snapshot store, falling back
// to seed when the key is absent or the payload fails validation.
func NewTimeEntryRepository(ctx context.Context, store snapshot.Store, seed []timeclock.TimeEntry) (*TimeEntryRepository, error) {
	r := &TimeEntryRepository{store: store}

	payload, err := store.Get(ctx, snapshot.KeyTimeEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to load time entry snapshot: %w", err)
	}

	if entries, ok := decodeTimeEntries(payload); ok {
		r.entries = entries
	} else {
		r.entries = make([]timeclock.TimeEntry, len(seed))
		copy(r.entries, seed)
	}
	return r, nil
}

// decodeTimeEntries validates a stored payload. The second return is false
// when the seed should stand instead.
func decodeTimeEntries(payload []byte) ([]timeclock.TimeEntry, bool) {
	if payload == nil {
		return nil, false
	}
	var entries []timeclock.TimeEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		slog.Warn("discarding malformed snapshot, seed data stands", "key", snapshot.KeyTimeEntries, "error", err)
		return nil, false
	}
	for i, e := range entries {
		if e.ID == "" || e.UserID == "" {
			slog.Warn("discarding snapshot with invalid record, seed data stands",
				"key", snapshot.KeyTimeEntries, "index", i)
			return nil, false
		}
		if _, ok := validator.IsValidDate(e.Date); !ok {
			slog.Warn("discarding snapshot with invalid record date, seed data stands",
				"key", snapshot.KeyTimeEntries, "index", i, "date", e.Date)
			return nil, false
		}
	}
	return entries, true
}

func (r *TimeEntryRepository) persistLocked(ctx context.Context, entries []timeclock.TimeEntry) error {
	return persist(ctx, r.store, snapshot.KeyTimeEntries, entries)
}

// All implements timeclock.TimeEntryRepository.
func (r *TimeEntryRepository) All(ctx context.Context) ([]timeclock.TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]timeclock.TimeEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// ForUser implements timeclock.TimeEntryRepository.
func (r *TimeEntryRepository) ForUser(ctx context.Context, userID string) ([]timeclock.TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []timeclock.TimeEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

// GetByID implements timeclock.TimeEntryRepository.
func (r *TimeEntryRepository) GetByID(ctx context.Context, id string) (*timeclock.TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.ID == id {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}

// Append implements timeclock.TimeEntryRepository.
func (r *TimeEntryRepository) Append(ctx context.Context, entry timeclock.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]timeclock.TimeEntry, len(r.entries), len(r.entries)+1)
	copy(next, r.entries)
	next = append(next, entry)

	if err := r.persistLocked(ctx, next); err != nil {
		return err
	}
	r.entries = next
	return nil
}

// Update implements timeclock.TimeEntryRepository. Unknown ids leave the
// collection unchanged.
func (r *TimeEntryRepository) Update(ctx context.Context, entry timeclock.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, e := range r.entries {
		if e.ID == entry.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	next := make([]timeclock.TimeEntry, len(r.entries))
	copy(next, r.entries)
	next[idx] = entry

	if err := r.persistLocked(ctx, next); err != nil {
		return err
	}
	r.entries = next
	return nil
}
