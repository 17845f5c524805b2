package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jonboulle/clockwork"

	"github.com/shiftdesk/shiftdesk-go/internal/config"
	"github.com/shiftdesk/shiftdesk-go/internal/domain/auth"
	"github.com/shiftdesk/shiftdesk-go/internal/domain/preference"
	"github.com/shiftdesk/shiftdesk-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-go/internal/domain/timeclock"
	"github.com/shiftdesk/shiftdesk-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-go/internal/fixtures"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/snapshot"
	"github.com/shiftdesk/shiftdesk-go/internal/repository/memory"
	authService "github.com/shiftdesk/shiftdesk-go/internal/service/auth"
	preferenceService "github.com/shiftdesk/shiftdesk-go/internal/service/preference"
	shiftService "github.com/shiftdesk/shiftdesk-go/internal/service/shift"
	timeclockService "github.com/shiftdesk/shiftdesk-go/internal/service/timeclock"
)

var cli struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Login  LoginCmd  `cmd:"" help:"Log in with email and password"`
	Logout LogoutCmd `cmd:"" help:"Log out"`
	Whoami WhoamiCmd `cmd:"" help:"Show the logged-in user"`
	Clock  ClockCmd  `cmd:"" help:"Clock in and out, inspect and correct entries"`
	Prefs  PrefsCmd  `cmd:"" help:"Submit and review shift preferences"`
	Shifts ShiftsCmd `cmd:"" help:"Inspect and manage the shift schedule"`
	Users  UsersCmd  `cmd:"" help:"List the staff roster"`
}

// application is the explicitly wired object graph every command runs
// against. It is built once per invocation and torn down on exit.
type application struct {
	users       user.UserRepository
	auth        auth.AuthService
	timeClock   timeclock.TimeClockService
	preferences preference.PreferenceService
	shifts      shift.ShiftService
}

func buildApplication(ctx context.Context, cfg *config.Config, clk clockwork.Clock) (*application, *snapshot.SQLiteStore, error) {
	store, err := snapshot.NewSQLiteStore(cfg.Storage.DBPath)
	if err != nil {
		return nil, nil, err
	}

	var seed fixtures.SeedData
	if cfg.Seed.RosterFile != "" {
		seed, err = fixtures.FromRosterFile(clk, cfg.Seed.RosterFile)
	} else {
		seed, err = fixtures.Default(clk)
	}
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	userRepo := memory.NewUserRepository(seed.Users)
	sessionRepo, err := memory.NewSessionRepository(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	timeEntryRepo, err := memory.NewTimeEntryRepository(ctx, store, seed.TimeEntries)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	preferenceRepo, err := memory.NewPreferenceRepository(ctx, store, seed.Preferences)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	shiftRepo, err := memory.NewShiftRepository(ctx, store, seed.Shifts)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	shiftSvc := shiftService.NewShiftService(shiftRepo, clk)
	app := &application{
		users:       userRepo,
		auth:        authService.NewAuthService(userRepo, sessionRepo),
		timeClock:   timeclockService.NewTimeClockService(timeEntryRepo, clk),
		preferences: preferenceService.NewPreferenceService(preferenceRepo, shiftSvc),
		shifts:      shiftSvc,
	}
	return app, store, nil
}

// requireLogin returns the session user or ErrNotAuthenticated.
func (a *application) requireLogin(ctx context.Context) (user.User, error) {
	current, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return user.User{}, err
	}
	if current == nil {
		return user.User{}, auth.ErrNotAuthenticated
	}
	return *current, nil
}

// requireAdmin returns the session user only when it holds the admin role.
func (a *application) requireAdmin(ctx context.Context) (user.User, error) {
	current, err := a.requireLogin(ctx)
	if err != nil {
		return user.User{}, err
	}
	if !current.IsAdmin() {
		return user.User{}, user.ErrAdminPrivilegeRequired
	}
	return current, nil
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("shiftdesk"),
		kong.Description("Attendance and shift scheduling for a single office."),
	)

	cfg, err := config.Load()
	kctx.FatalIfErrorf(err)

	logLevel := slog.LevelInfo
	if cli.Verbose || cfg.App.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	} else if cfg.App.LogLevel == "warn" {
		logLevel = slog.LevelWarn
	} else if cfg.App.LogLevel == "error" {
		logLevel = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	ctx := context.Background()
	app, store, err := buildApplication(ctx, cfg, clockwork.NewRealClock())
	kctx.FatalIfErrorf(err)
	defer store.Close()

	kctx.FatalIfErrorf(kctx.Run(app))
}
