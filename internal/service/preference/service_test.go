package preference

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/preference"
	"github.com/shiftdesk/shiftdesk-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/snapshot"
	"github.com/shiftdesk/shiftdesk-go/internal/repository/memory"
	shiftService "github.com/shiftdesk/shiftdesk-go/internal/service/shift"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)

type testEnv struct {
	svc    preference.PreferenceService
	prefs  *memory.PreferenceRepository
	shifts *memory.ShiftRepository
}

func newTestEnv(t *testing.T, seed []preference.ShiftPreference) testEnv {
	t.Helper()

	store, err := snapshot.NewSQLiteStore(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	prefRepo, err := memory.NewPreferenceRepository(ctx, store, seed)
	require.NoError(t, err)
	shiftRepo, err := memory.NewShiftRepository(ctx, store, nil)
	require.NoError(t, err)

	shiftSvc := shiftService.NewShiftService(shiftRepo, clockwork.NewFakeClockAt(testNow))
	return testEnv{
		svc:    NewPreferenceService(prefRepo, shiftSvc),
		prefs:  prefRepo,
		shifts: shiftRepo,
	}
}

func TestSubmitAlwaysYieldsPending(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	created, err := env.svc.Submit(ctx, preference.SubmitRequest{
		UserID:    "3",
		Date:      "2025-06-20",
		StartTime: "13:00",
		EndTime:   "21:00",
		Notes:     "午後のシフトを希望します",
	})
	require.NoError(t, err)
	assert.Equal(t, preference.StatusPending, created.Status)
	assert.NotEmpty(t, created.ID)

	stored, err := env.prefs.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, preference.StatusPending, stored.Status)
}

func TestSubmitValidatesFields(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	cases := []struct {
		name string
		req  preference.SubmitRequest
	}{
		{"missing user", preference.SubmitRequest{Date: "2025-06-20", StartTime: "09:00", EndTime: "17:00"}},
		{"bad date", preference.SubmitRequest{UserID: "3", Date: "20-06-2025", StartTime: "09:00", EndTime: "17:00"}},
		{"bad start", preference.SubmitRequest{UserID: "3", Date: "2025-06-20", StartTime: "9am", EndTime: "17:00"}},
		{"bad end", preference.SubmitRequest{UserID: "3", Date: "2025-06-20", StartTime: "09:00", EndTime: "25:00"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := env.svc.Submit(ctx, c.req)
			assert.Error(t, err)
		})
	}
}

func TestUpdateStatusTouchesOnlyMatchingRecord(t *testing.T) {
	ctx := context.Background()
	seed := []preference.ShiftPreference{
		{ID: "1", UserID: "2", Date: "2025-06-16", StartTime: "09:00", EndTime: "17:00", Status: preference.StatusPending},
		{ID: "2", UserID: "3", Date: "2025-06-16", StartTime: "13:00", EndTime: "21:00", Status: preference.StatusPending},
	}
	env := newTestEnv(t, seed)

	require.NoError(t, env.svc.UpdateStatus(ctx, "1", preference.StatusApproved))

	prefs, err := env.prefs.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, preference.StatusApproved, prefs[0].Status)
	assert.Equal(t, seed[1], prefs[1])
}

func TestUpdateStatusUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	seed := []preference.ShiftPreference{
		{ID: "1", UserID: "2", Date: "2025-06-16", StartTime: "09:00", EndTime: "17:00", Status: preference.StatusPending},
	}
	env := newTestEnv(t, seed)

	require.NoError(t, env.svc.UpdateStatus(ctx, "nope", preference.StatusApproved))

	prefs, err := env.prefs.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, prefs)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	err := env.svc.UpdateStatus(ctx, "1", preference.Status("cancelled"))
	assert.ErrorIs(t, err, preference.ErrInvalidStatus)
}

// Approving a pending preference must both mark it approved and append
// exactly one scheduled shift copying its slot.
func TestApproveSchedulesMatchingShift(t *testing.T) {
	ctx := context.Background()
	seed := []preference.ShiftPreference{
		{ID: "3", UserID: "3", Date: "2025-06-16", StartTime: "13:00", EndTime: "21:00", Status: preference.StatusPending},
	}
	env := newTestEnv(t, seed)

	require.NoError(t, env.svc.Approve(ctx, "3"))

	pref, err := env.prefs.GetByID(ctx, "3")
	require.NoError(t, err)
	require.NotNil(t, pref)
	assert.Equal(t, preference.StatusApproved, pref.Status)

	shifts, err := env.shifts.All(ctx)
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, "3", shifts[0].UserID)
	assert.Equal(t, "2025-06-16", shifts[0].Date)
	assert.Equal(t, "13:00", shifts[0].StartTime)
	assert.Equal(t, "21:00", shifts[0].EndTime)
	assert.Equal(t, shift.StatusScheduled, shifts[0].Status)
}

func TestApproveUnknownIDCreatesNoShift(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	require.NoError(t, env.svc.Approve(ctx, "nope"))

	shifts, err := env.shifts.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, shifts)
}

func TestRejectLeavesShiftsAlone(t *testing.T) {
	ctx := context.Background()
	seed := []preference.ShiftPreference{
		{ID: "1", UserID: "2", Date: "2025-06-16", StartTime: "09:00", EndTime: "17:00", Status: preference.StatusPending},
	}
	env := newTestEnv(t, seed)

	require.NoError(t, env.svc.Reject(ctx, "1"))

	pref, err := env.prefs.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, preference.StatusRejected, pref.Status)

	shifts, err := env.shifts.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, shifts)
}

func TestPendingFiltersDecidedPreferences(t *testing.T) {
	ctx := context.Background()
	seed := []preference.ShiftPreference{
		{ID: "1", UserID: "2", Date: "2025-06-16", StartTime: "09:00", EndTime: "17:00", Status: preference.StatusPending},
		{ID: "2", UserID: "2", Date: "2025-06-17", StartTime: "09:00", EndTime: "17:00", Status: preference.StatusApproved},
		{ID: "3", UserID: "3", Date: "2025-06-16", StartTime: "13:00", EndTime: "21:00", Status: preference.StatusRejected},
	}
	env := newTestEnv(t, seed)

	pending, err := env.svc.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "1", pending[0].ID)
}
