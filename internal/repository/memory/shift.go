package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/snapshot"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/validator"
)

// ShiftRepository keeps the shift collection in memory and writes it
// through to the shifts snapshot key after every mutation.
type ShiftRepository struct {
	store snapshot.Store

	mu     sync.RWMutex
	shifts []shift.Shift
}

// NewShiftRepository rehydrates from the snapshot store, falling back to
// seed when the key is absent or the payload fails validation.
func NewShiftRepository(ctx context.Context, store snapshot.Store, seed []shift.Shift) (*ShiftRepository, error) {
	r := &ShiftRepository{store: store}

	payload, err := store.Get(ctx, snapshot.KeyShifts)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift snapshot: %w", err)
	}

	if shifts, ok := decodeShifts(payload); ok {
		r.shifts = shifts
	} else {
		r.shifts = make([]shift.Shift, len(seed))
		copy(r.shifts, seed)
	}
	return r, nil
}

func decodeShifts(payload []byte) ([]shift.Shift, bool) {
	if payload == nil {
		return nil, false
	}
	var shifts []shift.Shift
	if err := json.Unmarshal(payload, &shifts); err != nil {
		slog.Warn("discarding malformed snapshot, seed data stands", "key", snapshot.KeyShifts, "error", err)
		return nil, false
	}
	for i, s := range shifts {
		if s.ID == "" || s.UserID == "" || !s.Status.Valid() {
			slog.Warn("discarding snapshot with invalid record, seed data stands",
				"key", snapshot.KeyShifts, "index", i)
			return nil, false
		}
		if _, ok := validator.IsValidDate(s.Date); !ok {
			slog.Warn("discarding snapshot with invalid record date, seed data stands",
				"key", snapshot.KeyShifts, "index", i, "date", s.Date)
			return nil, false
		}
	}
	return shifts, true
}

func (r *ShiftRepository) persistLocked(ctx context.Context, shifts []shift.Shift) error {
	return persist(ctx, r.store, snapshot.KeyShifts, shifts)
}

// All implements shift.ShiftRepository.
func (r *ShiftRepository) All(ctx context.Context) ([]shift.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shift.Shift, len(r.shifts))
	copy(out, r.shifts)
	return out, nil
}

// ForUser implements shift.ShiftRepository.
func (r *ShiftRepository) ForUser(ctx context.Context, userID string) ([]shift.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []shift.Shift
	for _, s := range r.shifts {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

// GetByID implements shift.ShiftRepository.
func (r *ShiftRepository) GetByID(ctx context.Context, id string) (*shift.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.shifts {
		if s.ID == id {
			sh := s
			return &sh, nil
		}
	}
	return nil, nil
}

// Append implements shift.ShiftRepository.
func (r *ShiftRepository) Append(ctx context.Context, s shift.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]shift.Shift, len(r.shifts), len(r.shifts)+1)
	copy(next, r.shifts)
	next = append(next, s)

	if err := r.persistLocked(ctx, next); err != nil {
		return err
	}
	r.shifts = next
	return nil
}

// Update implements shift.ShiftRepository. Unknown ids leave the collection
// unchanged.
func (r *ShiftRepository) Update(ctx context.Context, s shift.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, sh := range r.shifts {
		if sh.ID == s.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	next := make([]shift.Shift, len(r.shifts))
	copy(next, r.shifts)
	next[idx] = s

	if err := r.persistLocked(ctx, next); err != nil {
		return err
	}
	r.shifts = next
	return nil
}
