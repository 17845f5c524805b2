package preference

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known preference statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ShiftPreference is an employee's request to work a particular slot.
// Preferences are created pending; admins move them to approved or rejected.
type ShiftPreference struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
	Status    Status `json:"status"`
	Notes     string `json:"notes,omitempty"`
}
