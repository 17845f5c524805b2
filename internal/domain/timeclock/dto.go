package timeclock

import "time"

// CorrectionRequest carries partial field overrides for an existing entry.
// Nil fields are left untouched. Applying a correction always marks the
// entry as corrected, and no cross-field ordering check is performed: an
// administrator fixing a forgotten clock-out is trusted to enter sane times.
type CorrectionRequest struct {
	ClockIn  *time.Time `json:"clockInTime,omitempty"`
	ClockOut *time.Time `json:"clockOutTime,omitempty"`
	Date     *string    `json:"date,omitempty"`
	Reason   *string    `json:"correctionReason,omitempty"`
}
