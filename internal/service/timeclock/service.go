package timeclock

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/timeclock"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/dateutil"
)

type TimeClockServiceImpl struct {
	timeclock.TimeEntryRepository
	clock clockwork.Clock
}

func NewTimeClockService(repo timeclock.TimeEntryRepository, clock clockwork.Clock) timeclock.TimeClockService {
	return &TimeClockServiceImpl{
		TimeEntryRepository: repo,
		clock:               clock,
	}
}

func (s *TimeClockServiceImpl) today() string {
	return dateutil.Day(s.clock.Now())
}

// ActiveEntry implements timeclock.TimeClockService. The lookup is a linear
// scan; with a single-office roster the collection stays small.
func (s *TimeClockServiceImpl) ActiveEntry(ctx context.Context, userID string) (*timeclock.TimeEntry, error) {
	entries, err := s.TimeEntryRepository.ForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	today := s.today()
	for _, e := range entries {
		if e.Active(today) {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}

// ClockIn implements timeclock.TimeClockService.
func (s *TimeClockServiceImpl) ClockIn(ctx context.Context, userID string) (*timeclock.TimeEntry, error) {
	active, err := s.ActiveEntry(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return active, nil
	}

	now := s.clock.Now()
	entry := timeclock.TimeEntry{
		ID:      uuid.New().String(),
		UserID:  userID,
		Date:    dateutil.Day(now),
		ClockIn: &now,
	}
	if err := s.TimeEntryRepository.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}
	return &entry, nil
}

// ClockOut implements timeclock.TimeClockService.
func (s *TimeClockServiceImpl) ClockOut(ctx context.Context, userID string) (*timeclock.TimeEntry, error) {
	active, err := s.ActiveEntry(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, nil
	}

	now := s.clock.Now()
	active.ClockOut = &now
	if err := s.TimeEntryRepository.Update(ctx, *active); err != nil {
		return nil, fmt.Errorf("failed to update time entry: %w", err)
	}
	return active, nil
}

// Correct implements timeclock.TimeClockService. The override fields are
// applied as-is and the entry is flagged corrected; there is no check that
// the resulting clock-out still follows the clock-in.
func (s *TimeClockServiceImpl) Correct(ctx context.Context, entryID string, req timeclock.CorrectionRequest) error {
	entry, err := s.TimeEntryRepository.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to get time entry: %w", err)
	}
	if entry == nil {
		return nil
	}

	if req.ClockIn != nil {
		entry.ClockIn = req.ClockIn
	}
	if req.ClockOut != nil {
		entry.ClockOut = req.ClockOut
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.Reason != nil {
		entry.CorrectionReason = *req.Reason
	}
	entry.Corrected = true

	if err := s.TimeEntryRepository.Update(ctx, *entry); err != nil {
		return fmt.Errorf("failed to update time entry: %w", err)
	}
	return nil
}

// EntriesForUser implements timeclock.TimeClockService.
func (s *TimeClockServiceImpl) EntriesForUser(ctx context.Context, userID string) ([]timeclock.TimeEntry, error) {
	entries, err := s.TimeEntryRepository.ForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	return entries, nil
}
