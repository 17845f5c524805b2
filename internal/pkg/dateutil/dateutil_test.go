package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDay(t *testing.T) {
	d := time.Date(2025, 6, 5, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2025-06-05", Day(d))
}

func TestClockTime(t *testing.T) {
	assert.Equal(t, "--:--", ClockTime(nil))

	at := time.Date(2025, 6, 5, 9, 5, 30, 0, time.Local)
	assert.Equal(t, "09:05", ClockTime(&at))
}

func TestWorkedHours(t *testing.T) {
	start := time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		end  time.Time
		want float64
	}{
		{"full day", start.Add(8 * time.Hour), 8.0},
		{"rounds to one decimal", start.Add(7*time.Hour + 50*time.Minute), 7.8},
		{"short span", start.Add(27 * time.Minute), 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, WorkedHours(start, c.end))
		})
	}
}
