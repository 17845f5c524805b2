package timeclock

import "context"

// TimeEntryRepository defines data access for time entries. Entries are
// appended or updated in place, never removed.
type TimeEntryRepository interface {
	// All returns every time entry.
	All(ctx context.Context) ([]TimeEntry, error)

	// ForUser returns every time entry belonging to userID.
	ForUser(ctx context.Context, userID string) ([]TimeEntry, error)

	// GetByID retrieves an entry by id, or nil when absent.
	GetByID(ctx context.Context, id string) (*TimeEntry, error)

	// Append adds a new entry to the collection.
	Append(ctx context.Context, entry TimeEntry) error

	// Update replaces the entry matching entry.ID. Unknown ids leave the
	// collection unchanged.
	Update(ctx context.Context, entry TimeEntry) error
}
