package shift

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/snapshot"
	"github.com/shiftdesk/shiftdesk-go/internal/repository/memory"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)

func newShiftService(t *testing.T, seed []shift.Shift) (shift.ShiftService, *memory.ShiftRepository) {
	t.Helper()

	store, err := snapshot.NewSQLiteStore(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	repo, err := memory.NewShiftRepository(context.Background(), store, seed)
	require.NoError(t, err)

	return NewShiftService(repo, clockwork.NewFakeClockAt(testNow)), repo
}

func TestScheduleForcesScheduledStatus(t *testing.T) {
	ctx := context.Background()
	svc, repo := newShiftService(t, nil)

	created, err := svc.Schedule(ctx, shift.ScheduleRequest{
		UserID:    "4",
		Date:      "2025-06-18",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)
	assert.Equal(t, shift.StatusScheduled, created.Status)
	assert.NotEmpty(t, created.ID)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, created, *stored)
}

func TestScheduleValidatesFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newShiftService(t, nil)

	_, err := svc.Schedule(ctx, shift.ScheduleRequest{UserID: "", Date: "nope", StartTime: "x", EndTime: "y"})
	assert.Error(t, err)
}

func TestTodayShiftsBoundary(t *testing.T) {
	ctx := context.Background()
	seed := []shift.Shift{
		{ID: "1", UserID: "2", Date: "2025-06-15", StartTime: "09:00", EndTime: "17:00", Status: shift.StatusScheduled},
		{ID: "2", UserID: "3", Date: "2025-06-15", StartTime: "13:00", EndTime: "21:00", Status: shift.StatusScheduled},
		{ID: "3", UserID: "4", Date: "2025-06-14", StartTime: "09:00", EndTime: "17:00", Status: shift.StatusCompleted},
		{ID: "4", UserID: "2", Date: "2025-06-16", StartTime: "09:00", EndTime: "17:00", Status: shift.StatusScheduled},
	}
	svc, _ := newShiftService(t, seed)

	today, err := svc.TodayShifts(ctx)
	require.NoError(t, err)
	require.Len(t, today, 2)
	for _, sh := range today {
		assert.Equal(t, "2025-06-15", sh.Date)
	}
}

func TestUpdateStatusOverwrites(t *testing.T) {
	ctx := context.Background()
	seed := []shift.Shift{
		{ID: "1", UserID: "2", Date: "2025-06-15", StartTime: "09:00", EndTime: "17:00", Status: shift.StatusScheduled},
	}
	svc, repo := newShiftService(t, seed)

	require.NoError(t, svc.UpdateStatus(ctx, "1", shift.StatusCompleted))

	stored, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, shift.StatusCompleted, stored.Status)
}

func TestUpdateStatusUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	seed := []shift.Shift{
		{ID: "1", UserID: "2", Date: "2025-06-15", StartTime: "09:00", EndTime: "17:00", Status: shift.StatusScheduled},
	}
	svc, repo := newShiftService(t, seed)

	require.NoError(t, svc.UpdateStatus(ctx, "nope", shift.StatusMissed))

	shifts, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, shifts)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newShiftService(t, nil)

	err := svc.UpdateStatus(ctx, "1", shift.Status("cancelled"))
	assert.ErrorIs(t, err, shift.ErrInvalidStatus)
}

func TestUpcomingExcludesPastShifts(t *testing.T) {
	ctx := context.Background()
	seed := []shift.Shift{
		{ID: "1", UserID: "2", Date: "2025-06-14", StartTime: "09:00", EndTime: "17:00", Status: shift.StatusCompleted},
		{ID: "2", UserID: "2", Date: "2025-06-15", StartTime: "09:00", EndTime: "17:00", Status: shift.StatusScheduled},
		{ID: "3", UserID: "2", Date: "2025-06-16", StartTime: "09:00", EndTime: "17:00", Status: shift.StatusScheduled},
		{ID: "4", UserID: "3", Date: "2025-06-16", StartTime: "13:00", EndTime: "21:00", Status: shift.StatusScheduled},
	}
	svc, _ := newShiftService(t, seed)

	upcoming, err := svc.Upcoming(ctx, "2")
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "2", upcoming[0].ID)
	assert.Equal(t, "3", upcoming[1].ID)
}
