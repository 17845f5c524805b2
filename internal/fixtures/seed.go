// Package fixtures holds the seed dataset used when no snapshot payload
// exists yet: a four-person roster plus a handful of time entries,
// preferences and shifts anchored to the current day.
package fixtures

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/preference"
	"github.com/shiftdesk/shiftdesk-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-go/internal/domain/timeclock"
	"github.com/shiftdesk/shiftdesk-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/dateutil"
)

// SeedData is the fallback content for every collection.
type SeedData struct {
	Users       []user.User
	TimeEntries []timeclock.TimeEntry
	Preferences []preference.ShiftPreference
	Shifts      []shift.Shift
}

// seedUser pairs a roster entry with its initial password. Passwords are
// hashed on seeding; nothing stores or compares them in plaintext.
type seedUser struct {
	ID       string
	Name     string
	Role     user.Role
	Email    string
	Password string
}

var defaultRoster = []seedUser{
	{ID: "1", Name: "田中 健太", Role: user.RoleAdmin, Email: "tanaka@example.com", Password: "admin123"},
	{ID: "2", Name: "佐藤 美咲", Role: user.RoleEmployee, Email: "sato@example.com", Password: "employee123"},
	{ID: "3", Name: "山田 太郎", Role: user.RoleEmployee, Email: "yamada@example.com", Password: "employee456"},
	{ID: "4", Name: "鈴木 さくら", Role: user.RoleEmployee, Email: "suzuki@example.com", Password: "employee789"},
}

// Default builds the seed dataset relative to the clock's current day.
func Default(clk clockwork.Clock) (SeedData, error) {
	users, err := buildUsers(defaultRoster)
	if err != nil {
		return SeedData{}, err
	}
	return buildData(clk, users), nil
}

func buildUsers(roster []seedUser) ([]user.User, error) {
	users := make([]user.User, 0, len(roster))
	for _, su := range roster {
		// MinCost: these are fixture credentials, not real ones, and the
		// seed runs on every process start.
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password for %s: %w", su.Email, err)
		}
		users = append(users, user.User{
			ID:           su.ID,
			Name:         su.Name,
			Role:         su.Role,
			Email:        su.Email,
			PasswordHash: string(hash),
		})
	}
	return users, nil
}

func buildData(clk clockwork.Clock, users []user.User) SeedData {
	day := func(offset int) string {
		return dateutil.Day(clk.Now().AddDate(0, 0, offset))
	}
	at := func(offset, hour, min int) *time.Time {
		now := clk.Now()
		t := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location()).
			AddDate(0, 0, offset)
		return &t
	}

	return SeedData{
		Users: users,
		TimeEntries: []timeclock.TimeEntry{
			{ID: "1", UserID: "2", Date: day(-1), ClockIn: at(-1, 9, 0), ClockOut: at(-1, 17, 0)},
			{ID: "2", UserID: "3", Date: day(-1), ClockIn: at(-1, 10, 0), ClockOut: at(-1, 19, 0)},
			// Open entry: user 2 is clocked in today.
			{ID: "3", UserID: "2", Date: day(0), ClockIn: at(0, 9, 0)},
		},
		Preferences: []preference.ShiftPreference{
			{ID: "1", UserID: "2", Date: day(1), StartTime: "09:00", EndTime: "17:00", Status: preference.StatusPending},
			{ID: "2", UserID: "2", Date: day(2), StartTime: "09:00", EndTime: "17:00", Status: preference.StatusApproved},
			{ID: "3", UserID: "3", Date: day(1), StartTime: "13:00", EndTime: "21:00", Status: preference.StatusPending, Notes: "午後のシフトを希望します"},
			{ID: "4", UserID: "4", Date: day(2), StartTime: "09:00", EndTime: "17:00", Status: preference.StatusApproved},
		},
		Shifts: []shift.Shift{
			{ID: "1", UserID: "2", Date: day(0), StartTime: "09:00", EndTime: "17:00", Status: shift.StatusScheduled},
			{ID: "2", UserID: "3", Date: day(0), StartTime: "13:00", EndTime: "21:00", Status: shift.StatusScheduled},
			{ID: "3", UserID: "4", Date: day(0), StartTime: "09:00", EndTime: "17:00", Status: shift.StatusScheduled},
			{ID: "4", UserID: "2", Date: day(1), StartTime: "09:00", EndTime: "17:00", Status: shift.StatusScheduled},
			{ID: "5", UserID: "4", Date: day(1), StartTime: "09:00", EndTime: "17:00", Status: shift.StatusScheduled},
		},
	}
}
