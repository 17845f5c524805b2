package preference

import "context"

// PreferenceRepository defines data access for shift preferences.
type PreferenceRepository interface {
	// All returns every preference.
	All(ctx context.Context) ([]ShiftPreference, error)

	// ForUser returns every preference belonging to userID.
	ForUser(ctx context.Context, userID string) ([]ShiftPreference, error)

	// GetByID retrieves a preference by id, or nil when absent.
	GetByID(ctx context.Context, id string) (*ShiftPreference, error)

	// Append adds a new preference to the collection.
	Append(ctx context.Context, pref ShiftPreference) error

	// Update replaces the preference matching pref.ID. Unknown ids leave the
	// collection unchanged.
	Update(ctx context.Context, pref ShiftPreference) error
}
