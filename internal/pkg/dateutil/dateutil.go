// Package dateutil holds the day-string and duration helpers shared by the
// store and the command surface. A calendar day is always its local
// YYYY-MM-DD rendering; instants stay time.Time until display.
package dateutil

import (
	"math"
	"time"
)

const DayFormat = "2006-01-02"

// Day formats t as a local calendar day.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}

// ClockTime formats t as HH:MM, or "--:--" for a missing instant.
func ClockTime(t *time.Time) string {
	if t == nil {
		return "--:--"
	}
	return t.Format("15:04")
}

// WorkedHours returns the span between start and end in hours, rounded to
// one decimal place.
func WorkedHours(start, end time.Time) float64 {
	hours := end.Sub(start).Hours()
	return math.Round(hours*10) / 10
}
