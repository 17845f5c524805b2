package timeclock

import "context"

// TimeClockService defines business logic for the time clock.
//
// Clock-in with an active entry already present, clock-out without one, and
// corrections against an unknown id are all silent no-ops: the collection is
// left unchanged and no error is returned.
type TimeClockService interface {
	// ClockIn opens a new entry for today unless the user already has an
	// active one; either way the active entry is returned.
	ClockIn(ctx context.Context, userID string) (*TimeEntry, error)

	// ClockOut closes the user's active entry for today and returns it, or
	// nil when there is nothing to close.
	ClockOut(ctx context.Context, userID string) (*TimeEntry, error)

	// ActiveEntry returns the user's active entry for today, or nil.
	ActiveEntry(ctx context.Context, userID string) (*TimeEntry, error)

	// Correct applies partial overrides to the entry matching entryID and
	// marks it corrected.
	Correct(ctx context.Context, entryID string, req CorrectionRequest) error

	// EntriesForUser returns all of the user's entries.
	EntriesForUser(ctx context.Context, userID string) ([]TimeEntry, error)
}
