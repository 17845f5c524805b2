package shift

import "context"

// ShiftRepository defines data access for scheduled shifts.
type ShiftRepository interface {
	// All returns every shift.
	All(ctx context.Context) ([]Shift, error)

	// ForUser returns every shift belonging to userID.
	ForUser(ctx context.Context, userID string) ([]Shift, error)

	// GetByID retrieves a shift by id, or nil when absent.
	GetByID(ctx context.Context, id string) (*Shift, error)

	// Append adds a new shift to the collection.
	Append(ctx context.Context, s Shift) error

	// Update replaces the shift matching s.ID. Unknown ids leave the
	// collection unchanged.
	Update(ctx context.Context, s Shift) error
}
