package shift

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusMissed    Status = "missed"
)

// Valid reports whether s is one of the known shift statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusMissed:
		return true
	}
	return false
}

// Shift is a slot an employee is scheduled to work. Shifts are created by
// admin action, either directly or by approving a preference.
type Shift struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
	Status    Status `json:"status"`
}
