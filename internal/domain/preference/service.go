package preference

import "context"

// PreferenceService defines business logic for shift preferences.
//
// Status updates against an unknown id are silent no-ops. Nothing prevents
// moving an approved or rejected preference back to pending; present callers
// never do, and approval history is not tracked.
type PreferenceService interface {
	// Submit appends a new pending preference and returns it.
	Submit(ctx context.Context, req SubmitRequest) (ShiftPreference, error)

	// UpdateStatus overwrites the status of the matching preference.
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Approve marks the matching preference approved and schedules exactly
	// one new shift copying its user, date and times. The created shift
	// holds no reference back to the preference.
	Approve(ctx context.Context, id string) error

	// Reject marks the matching preference rejected.
	Reject(ctx context.Context, id string) error

	// ForUser returns all of the user's preferences.
	ForUser(ctx context.Context, userID string) ([]ShiftPreference, error)

	// Pending returns every preference still awaiting a decision.
	Pending(ctx context.Context) ([]ShiftPreference, error)
}
