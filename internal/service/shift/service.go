package shift

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/dateutil"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
	clock clockwork.Clock
}

func NewShiftService(repo shift.ShiftRepository, clock clockwork.Clock) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository: repo,
		clock:           clock,
	}
}

// Schedule implements shift.ShiftService. The created shift is always
// scheduled regardless of anything status-like in the input.
func (s *ShiftServiceImpl) Schedule(ctx context.Context, req shift.ScheduleRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}

	created := shift.Shift{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    shift.StatusScheduled,
	}
	if err := s.ShiftRepository.Append(ctx, created); err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, nil
}

// UpdateStatus implements shift.ShiftService. Unknown ids are silent
// no-ops.
func (s *ShiftServiceImpl) UpdateStatus(ctx context.Context, id string, status shift.Status) error {
	if !status.Valid() {
		return shift.ErrInvalidStatus
	}

	existing, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get shift: %w", err)
	}
	if existing == nil {
		return nil
	}

	existing.Status = status
	if err := s.ShiftRepository.Update(ctx, *existing); err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	return nil
}

// TodayShifts implements shift.ShiftService. Callers sort by start time
// when display order matters.
func (s *ShiftServiceImpl) TodayShifts(ctx context.Context) ([]shift.Shift, error) {
	all, err := s.ShiftRepository.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	today := dateutil.Day(s.clock.Now())
	var out []shift.Shift
	for _, sh := range all {
		if sh.Date == today {
			out = append(out, sh)
		}
	}
	return out, nil
}

// ForUser implements shift.ShiftService.
func (s *ShiftServiceImpl) ForUser(ctx context.Context, userID string) ([]shift.Shift, error) {
	shifts, err := s.ShiftRepository.ForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shifts, nil
}

// Upcoming implements shift.ShiftService. YYYY-MM-DD strings order
// lexicographically, so a plain string compare selects today and later.
func (s *ShiftServiceImpl) Upcoming(ctx context.Context, userID string) ([]shift.Shift, error) {
	shifts, err := s.ShiftRepository.ForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	today := dateutil.Day(s.clock.Now())
	var out []shift.Shift
	for _, sh := range shifts {
		if sh.Date >= today {
			out = append(out, sh)
		}
	}
	return out, nil
}

// All implements shift.ShiftService.
func (s *ShiftServiceImpl) All(ctx context.Context) ([]shift.Shift, error) {
	shifts, err := s.ShiftRepository.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shifts, nil
}
