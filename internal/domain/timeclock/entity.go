package timeclock

import "time"

// TimeEntry records one working day for one user. ClockIn and ClockOut are
// absolute instants; Date is the calendar day the entry belongs to.
//
// At most one entry per (UserID, Date) may have ClockIn set and ClockOut
// absent: the "active" entry for that user on that day.
type TimeEntry struct {
	ID               string     `json:"id"`
	UserID           string     `json:"userId"`
	Date             string     `json:"date"` // YYYY-MM-DD
	ClockIn          *time.Time `json:"clockInTime"`
	ClockOut         *time.Time `json:"clockOutTime"`
	Corrected        bool       `json:"corrected,omitempty"`
	CorrectionReason string     `json:"correctionReason,omitempty"`
}

// Active reports whether the entry has a recorded clock-in and no recorded
// clock-out on the given day.
func (e *TimeEntry) Active(date string) bool {
	return e.Date == date && e.ClockIn != nil && e.ClockOut == nil
}
