package shift

import "context"

// ShiftService defines business logic for the shift schedule.
//
// Status updates against an unknown id are silent no-ops. No guard prevents
// an illegal transition; the two enum values past scheduled are terminal in
// practice only.
type ShiftService interface {
	// Schedule appends a new scheduled shift and returns it.
	Schedule(ctx context.Context, req ScheduleRequest) (Shift, error)

	// UpdateStatus overwrites the status of the matching shift.
	UpdateStatus(ctx context.Context, id string, status Status) error

	// TodayShifts returns the shifts dated today, in no guaranteed order.
	TodayShifts(ctx context.Context) ([]Shift, error)

	// ForUser returns all of the user's shifts.
	ForUser(ctx context.Context, userID string) ([]Shift, error)

	// Upcoming returns the user's shifts dated today or later.
	Upcoming(ctx context.Context, userID string) ([]Shift, error)

	// All returns every shift.
	All(ctx context.Context) ([]Shift, error)
}
