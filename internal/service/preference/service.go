package preference

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/preference"
	"github.com/shiftdesk/shiftdesk-go/internal/domain/shift"
)

type PreferenceServiceImpl struct {
	preference.PreferenceRepository
	shiftService shift.ShiftService
}

func NewPreferenceService(repo preference.PreferenceRepository, shiftService shift.ShiftService) preference.PreferenceService {
	return &PreferenceServiceImpl{
		PreferenceRepository: repo,
		shiftService:         shiftService,
	}
}

// Submit implements preference.PreferenceService. The stored preference is
// always pending regardless of anything status-like in the input.
func (s *PreferenceServiceImpl) Submit(ctx context.Context, req preference.SubmitRequest) (preference.ShiftPreference, error) {
	if err := req.Validate(); err != nil {
		return preference.ShiftPreference{}, err
	}

	created := preference.ShiftPreference{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    preference.StatusPending,
		Notes:     req.Notes,
	}
	if err := s.PreferenceRepository.Append(ctx, created); err != nil {
		return preference.ShiftPreference{}, fmt.Errorf("failed to create preference: %w", err)
	}
	return created, nil
}

// UpdateStatus implements preference.PreferenceService. Unknown ids are
// silent no-ops, and nothing stops a transition away from approved or
// rejected.
func (s *PreferenceServiceImpl) UpdateStatus(ctx context.Context, id string, status preference.Status) error {
	if !status.Valid() {
		return preference.ErrInvalidStatus
	}

	existing, err := s.PreferenceRepository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get preference: %w", err)
	}
	if existing == nil {
		return nil
	}

	existing.Status = status
	if err := s.PreferenceRepository.Update(ctx, *existing); err != nil {
		return fmt.Errorf("failed to update preference: %w", err)
	}
	return nil
}

// Approve implements preference.PreferenceService: the preference turns
// approved and its slot is copied into one new scheduled shift. The shift
// keeps no reference to the preference it came from.
func (s *PreferenceServiceImpl) Approve(ctx context.Context, id string) error {
	existing, err := s.PreferenceRepository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get preference: %w", err)
	}
	if existing == nil {
		return nil
	}

	if err := s.UpdateStatus(ctx, id, preference.StatusApproved); err != nil {
		return err
	}

	_, err = s.shiftService.Schedule(ctx, shift.ScheduleRequest{
		UserID:    existing.UserID,
		Date:      existing.Date,
		StartTime: existing.StartTime,
		EndTime:   existing.EndTime,
	})
	if err != nil {
		return fmt.Errorf("failed to schedule shift for approved preference: %w", err)
	}
	return nil
}

// Reject implements preference.PreferenceService.
func (s *PreferenceServiceImpl) Reject(ctx context.Context, id string) error {
	return s.UpdateStatus(ctx, id, preference.StatusRejected)
}

// ForUser implements preference.PreferenceService.
func (s *PreferenceServiceImpl) ForUser(ctx context.Context, userID string) ([]preference.ShiftPreference, error) {
	prefs, err := s.PreferenceRepository.ForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	return prefs, nil
}

// Pending implements preference.PreferenceService.
func (s *PreferenceServiceImpl) Pending(ctx context.Context) ([]preference.ShiftPreference, error) {
	all, err := s.PreferenceRepository.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}

	var out []preference.ShiftPreference
	for _, p := range all {
		if p.Status == preference.StatusPending {
			out = append(out, p)
		}
	}
	return out, nil
}
