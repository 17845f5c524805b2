package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/preference"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/snapshot"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/validator"
)

// PreferenceRepository keeps the shift preference collection in memory and
// writes it through to the shiftPreferences snapshot key after every
// mutation.
type PreferenceRepository struct {
	store snapshot.Store

	mu    sync.RWMutex
	prefs []preference.ShiftPreference
}

// NewPreferenceRepository rehydrates from the snapshot store, falling back
// to seed when the key is absent or the payload fails validation.
func NewPreferenceRepository(ctx context.Context, store snapshot.Store, seed []preference.ShiftPreference) (*PreferenceRepository, error) {
	r := &PreferenceRepository{store: store}

	payload, err := store.Get(ctx, snapshot.KeyShiftPreferences)
	if err != nil {
		return nil, fmt.Errorf("failed to load preference snapshot: %w", err)
	}

	if prefs, ok := decodePreferences(payload); ok {
		r.prefs = prefs
	} else {
		r.prefs = make([]preference.ShiftPreference, len(seed))
		copy(r.prefs, seed)
	}
	return r, nil
}

func decodePreferences(payload []byte) ([]preference.ShiftPreference, bool) {
	if payload == nil {
		return nil, false
	}
	var prefs []preference.ShiftPreference
	if err := json.Unmarshal(payload, &prefs); err != nil {
		slog.Warn("discarding malformed snapshot, seed data stands", "key", snapshot.KeyShiftPreferences, "error", err)
		return nil, false
	}
	for i, p := range prefs {
		if p.ID == "" || p.UserID == "" || !p.Status.Valid() {
			slog.Warn("discarding snapshot with invalid record, seed data stands",
				"key", snapshot.KeyShiftPreferences, "index", i)
			return nil, false
		}
		if _, ok := validator.IsValidDate(p.Date); !ok {
			slog.Warn("discarding snapshot with invalid record date, seed data stands",
				"key", snapshot.KeyShiftPreferences, "index", i, "date", p.Date)
			return nil, false
		}
	}
	return prefs, true
}

func (r *PreferenceRepository) persistLocked(ctx context.Context, prefs []preference.ShiftPreference) error {
	return persist(ctx, r.store, snapshot.KeyShiftPreferences, prefs)
}

// All implements preference.PreferenceRepository.
func (r *PreferenceRepository) All(ctx context.Context) ([]preference.ShiftPreference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]preference.ShiftPreference, len(r.prefs))
	copy(out, r.prefs)
	return out, nil
}

// ForUser implements preference.PreferenceRepository.
func (r *PreferenceRepository) ForUser(ctx context.Context, userID string) ([]preference.ShiftPreference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []preference.ShiftPreference
	for _, p := range r.prefs {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByID implements preference.PreferenceRepository.
func (r *PreferenceRepository) GetByID(ctx context.Context, id string) (*preference.ShiftPreference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.prefs {
		if p.ID == id {
			pref := p
			return &pref, nil
		}
	}
	return nil, nil
}

// Append implements preference.PreferenceRepository.
func (r *PreferenceRepository) Append(ctx context.Context, pref preference.ShiftPreference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]preference.ShiftPreference, len(r.prefs), len(r.prefs)+1)
	copy(next, r.prefs)
	next = append(next, pref)

	if err := r.persistLocked(ctx, next); err != nil {
		return err
	}
	r.prefs = next
	return nil
}

// Update implements preference.PreferenceRepository. Unknown ids leave the
// collection unchanged.
func (r *PreferenceRepository) Update(ctx context.Context, pref preference.ShiftPreference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, p := range r.prefs {
		if p.ID == pref.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	next := make([]preference.ShiftPreference, len(r.prefs))
	copy(next, r.prefs)
	next[idx] = pref

	if err := r.persistLocked(ctx, next); err != nil {
		return err
	}
	r.prefs = next
	return nil
}
