package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/auth"
	"github.com/shiftdesk/shiftdesk-go/internal/domain/preference"
	"github.com/shiftdesk/shiftdesk-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-go/internal/domain/timeclock"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/dateutil"
)

// userName resolves a display name, falling back to "Unknown" for an id
// that is not in the roster.
func (a *application) userName(ctx context.Context, id string) string {
	u, err := a.users.GetByID(ctx, id)
	if err != nil {
		return "Unknown"
	}
	return u.Name
}

type LoginCmd struct {
	Email    string `arg:"" help:"Account email"`
	Password string `arg:"" help:"Account password"`
}

func (c *LoginCmd) Run(app *application) error {
	ctx := context.Background()
	u, err := app.auth.Login(ctx, auth.LoginRequest{Email: c.Email, Password: c.Password})
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", u.Name, u.Role)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(app *application) error {
	if err := app.auth.Logout(context.Background()); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(app *application) error {
	current, err := app.auth.CurrentUser(context.Background())
	if err != nil {
		return err
	}
	if current == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s> (%s)\n", current.Name, current.Email, current.Role)
	return nil
}

type ClockCmd struct {
	In      ClockInCmd      `cmd:"" help:"Clock in for today"`
	Out     ClockOutCmd     `cmd:"" help:"Clock out of the active entry"`
	Status  ClockStatusCmd  `cmd:"" help:"Show today's clock status"`
	Correct ClockCorrectCmd `cmd:"" help:"Correct an entry (admin)"`
	Entries ClockEntriesCmd `cmd:"" help:"List your time entries"`
}

type ClockInCmd struct{}

func (c *ClockInCmd) Run(app *application) error {
	ctx := context.Background()
	u, err := app.requireLogin(ctx)
	if err != nil {
		return err
	}

	active, err := app.timeClock.ActiveEntry(ctx, u.ID)
	if err != nil {
		return err
	}
	if active != nil {
		fmt.Printf("Already clocked in at %s\n", dateutil.ClockTime(active.ClockIn))
		return nil
	}

	entry, err := app.timeClock.ClockIn(ctx, u.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Clocked in at %s\n", dateutil.ClockTime(entry.ClockIn))
	return nil
}

type ClockOutCmd struct{}

func (c *ClockOutCmd) Run(app *application) error {
	ctx := context.Background()
	u, err := app.requireLogin(ctx)
	if err != nil {
		return err
	}

	entry, err := app.timeClock.ClockOut(ctx, u.ID)
	if err != nil {
		return err
	}
	if entry == nil {
		fmt.Println("You are not clocked in")
		return nil
	}
	fmt.Printf("Clocked out at %s (%.1f hours)\n",
		dateutil.ClockTime(entry.ClockOut),
		dateutil.WorkedHours(*entry.ClockIn, *entry.ClockOut))
	return nil
}

type ClockStatusCmd struct{}

func (c *ClockStatusCmd) Run(app *application) error {
	ctx := context.Background()
	u, err := app.requireLogin(ctx)
	if err != nil {
		return err
	}

	active, err := app.timeClock.ActiveEntry(ctx, u.ID)
	if err != nil {
		return err
	}
	if active == nil {
		fmt.Println("Not clocked in")
		return nil
	}
	fmt.Printf("Clocked in since %s\n", dateutil.ClockTime(active.ClockIn))
	return nil
}

type ClockCorrectCmd struct {
	Entry  string `arg:"" help:"Entry id to correct"`
	Date   string `help:"Calendar day the corrected times fall on (YYYY-MM-DD)"`
	In     string `help:"Corrected clock-in time (HH:MM)"`
	Out    string `help:"Corrected clock-out time (HH:MM)"`
	Reason string `help:"Reason for the correction"`
}

func (c *ClockCorrectCmd) Run(app *application) error {
	ctx := context.Background()
	if _, err := app.requireAdmin(ctx); err != nil {
		return err
	}

	req := timeclock.CorrectionRequest{}
	if c.Date != "" {
		req.Date = &c.Date
	}
	if c.Reason != "" {
		req.Reason = &c.Reason
	}
	day := c.Date
	if day == "" {
		day = dateutil.Day(time.Now())
	}
	if c.In != "" {
		at, err := parseDayTime(day, c.In)
		if err != nil {
			return err
		}
		req.ClockIn = &at
	}
	if c.Out != "" {
		at, err := parseDayTime(day, c.Out)
		if err != nil {
			return err
		}
		req.ClockOut = &at
	}

	if err := app.timeClock.Correct(ctx, c.Entry, req); err != nil {
		return err
	}
	fmt.Println("Correction applied")
	return nil
}

func parseDayTime(day, clockTime string) (time.Time, error) {
	at, err := time.ParseInLocation("2006-01-02 15:04", day+" "+clockTime, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", clockTime, err)
	}
	return at, nil
}

type ClockEntriesCmd struct{}

func (c *ClockEntriesCmd) Run(app *application) error {
	ctx := context.Background()
	u, err := app.requireLogin(ctx)
	if err != nil {
		return err
	}

	entries, err := app.timeClock.EntriesForUser(ctx, u.ID)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	for _, e := range entries {
		flag := ""
		if e.Corrected {
			flag = " (corrected)"
		}
		fmt.Printf("%s  %s - %s%s\n", e.Date, dateutil.ClockTime(e.ClockIn), dateutil.ClockTime(e.ClockOut), flag)
	}
	return nil
}

type PrefsCmd struct {
	Submit  PrefsSubmitCmd  `cmd:"" help:"Submit a shift preference"`
	List    PrefsListCmd    `cmd:"" help:"List your preferences"`
	Pending PrefsPendingCmd `cmd:"" help:"List pending preferences (admin)"`
	Approve PrefsApproveCmd `cmd:"" help:"Approve a preference and schedule the shift (admin)"`
	Reject  PrefsRejectCmd  `cmd:"" help:"Reject a preference (admin)"`
}

type PrefsSubmitCmd struct {
	Date  string `arg:"" help:"Requested day (YYYY-MM-DD)"`
	Start string `arg:"" help:"Start time (HH:MM)"`
	End   string `arg:"" help:"End time (HH:MM)"`
	Notes string `help:"Optional note for the admin"`
}

func (c *PrefsSubmitCmd) Run(app *application) error {
	ctx := context.Background()
	u, err := app.requireLogin(ctx)
	if err != nil {
		return err
	}

	created, err := app.preferences.Submit(ctx, preference.SubmitRequest{
		UserID:    u.ID,
		Date:      c.Date,
		StartTime: c.Start,
		EndTime:   c.End,
		Notes:     c.Notes,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Preference %s submitted (%s %s-%s)\n", created.ID, created.Date, created.StartTime, created.EndTime)
	return nil
}

type PrefsListCmd struct{}

func (c *PrefsListCmd) Run(app *application) error {
	ctx := context.Background()
	u, err := app.requireLogin(ctx)
	if err != nil {
		return err
	}

	prefs, err := app.preferences.ForUser(ctx, u.ID)
	if err != nil {
		return err
	}
	sort.Slice(prefs, func(i, j int) bool { return prefs[i].Date < prefs[j].Date })
	for _, p := range prefs {
		fmt.Printf("%s  %s %s-%s  %s", p.ID, p.Date, p.StartTime, p.EndTime, p.Status)
		if p.Notes != "" {
			fmt.Printf("  (%s)", p.Notes)
		}
		fmt.Println()
	}
	return nil
}

type PrefsPendingCmd struct{}

func (c *PrefsPendingCmd) Run(app *application) error {
	ctx := context.Background()
	if _, err := app.requireAdmin(ctx); err != nil {
		return err
	}

	pending, err := app.preferences.Pending(ctx)
	if err != nil {
		return err
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Date < pending[j].Date })
	for _, p := range pending {
		fmt.Printf("%s  %s  %s %s-%s", p.ID, app.userName(ctx, p.UserID), p.Date, p.StartTime, p.EndTime)
		if p.Notes != "" {
			fmt.Printf("  (%s)", p.Notes)
		}
		fmt.Println()
	}
	return nil
}

type PrefsApproveCmd struct {
	ID string `arg:"" help:"Preference id"`
}

func (c *PrefsApproveCmd) Run(app *application) error {
	ctx := context.Background()
	if _, err := app.requireAdmin(ctx); err != nil {
		return err
	}
	if err := app.preferences.Approve(ctx, c.ID); err != nil {
		return err
	}
	fmt.Println("Preference approved, shift scheduled")
	return nil
}

type PrefsRejectCmd struct {
	ID string `arg:"" help:"Preference id"`
}

func (c *PrefsRejectCmd) Run(app *application) error {
	ctx := context.Background()
	if _, err := app.requireAdmin(ctx); err != nil {
		return err
	}
	if err := app.preferences.Reject(ctx, c.ID); err != nil {
		return err
	}
	fmt.Println("Preference rejected")
	return nil
}

type ShiftsCmd struct {
	Add       ShiftsAddCmd       `cmd:"" help:"Schedule a shift directly (admin)"`
	List      ShiftsListCmd      `cmd:"" help:"List your upcoming shifts"`
	Today     ShiftsTodayCmd     `cmd:"" help:"Show today's schedule"`
	SetStatus ShiftsSetStatusCmd `cmd:"" name:"set-status" help:"Mark a shift completed or missed (admin)"`
}

type ShiftsAddCmd struct {
	User  string `arg:"" help:"User id to schedule"`
	Date  string `arg:"" help:"Day (YYYY-MM-DD)"`
	Start string `arg:"" help:"Start time (HH:MM)"`
	End   string `arg:"" help:"End time (HH:MM)"`
}

func (c *ShiftsAddCmd) Run(app *application) error {
	ctx := context.Background()
	if _, err := app.requireAdmin(ctx); err != nil {
		return err
	}

	created, err := app.shifts.Schedule(ctx, shift.ScheduleRequest{
		UserID:    c.User,
		Date:      c.Date,
		StartTime: c.Start,
		EndTime:   c.End,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Shift %s scheduled for %s on %s %s-%s\n",
		created.ID, app.userName(ctx, created.UserID), created.Date, created.StartTime, created.EndTime)
	return nil
}

type ShiftsListCmd struct {
	All bool `help:"List everyone's shifts (admin)"`
}

func (c *ShiftsListCmd) Run(app *application) error {
	ctx := context.Background()
	u, err := app.requireLogin(ctx)
	if err != nil {
		return err
	}

	var shifts []shift.Shift
	if c.All {
		if _, err := app.requireAdmin(ctx); err != nil {
			return err
		}
		shifts, err = app.shifts.All(ctx)
	} else {
		shifts, err = app.shifts.Upcoming(ctx, u.ID)
	}
	if err != nil {
		return err
	}

	sort.Slice(shifts, func(i, j int) bool {
		if shifts[i].Date != shifts[j].Date {
			return shifts[i].Date < shifts[j].Date
		}
		return shifts[i].StartTime < shifts[j].StartTime
	})
	for _, sh := range shifts {
		fmt.Printf("%s  %s  %s %s-%s  %s\n",
			sh.ID, app.userName(ctx, sh.UserID), sh.Date, sh.StartTime, sh.EndTime, sh.Status)
	}
	return nil
}

type ShiftsTodayCmd struct{}

func (c *ShiftsTodayCmd) Run(app *application) error {
	ctx := context.Background()
	if _, err := app.requireLogin(ctx); err != nil {
		return err
	}

	today, err := app.shifts.TodayShifts(ctx)
	if err != nil {
		return err
	}
	sort.Slice(today, func(i, j int) bool { return today[i].StartTime < today[j].StartTime })
	for _, sh := range today {
		fmt.Printf("%s-%s  %s  %s\n", sh.StartTime, sh.EndTime, app.userName(ctx, sh.UserID), sh.Status)
	}
	return nil
}

type ShiftsSetStatusCmd struct {
	ID     string `arg:"" help:"Shift id"`
	Status string `arg:"" help:"New status (scheduled, completed or missed)"`
}

func (c *ShiftsSetStatusCmd) Run(app *application) error {
	ctx := context.Background()
	if _, err := app.requireAdmin(ctx); err != nil {
		return err
	}

	if err := app.shifts.UpdateStatus(ctx, c.ID, shift.Status(c.Status)); err != nil {
		if errors.Is(err, shift.ErrInvalidStatus) {
			return fmt.Errorf("%w: %s", shift.ErrInvalidStatus, c.Status)
		}
		return err
	}
	fmt.Println("Shift status updated")
	return nil
}

type UsersCmd struct{}

func (c *UsersCmd) Run(app *application) error {
	ctx := context.Background()
	if _, err := app.requireLogin(ctx); err != nil {
		return err
	}

	users, err := app.users.All(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		fmt.Printf("%s  %s <%s>  %s\n", u.ID, u.Name, u.Email, u.Role)
	}
	return nil
}
