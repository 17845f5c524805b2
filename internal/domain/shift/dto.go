package shift

import (
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/validator"
)

// ScheduleRequest carries a new shift. The status of the created record is
// always scheduled.
type ScheduleRequest struct {
	UserID    string `json:"userId"`
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
}

func (r *ScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "startTime",
			Message: "startTime must be in HH:MM format",
		})
	}

	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "endTime",
			Message: "endTime must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
