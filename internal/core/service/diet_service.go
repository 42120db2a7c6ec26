package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dermtrack/skincare-system/internal/core/domain"
	"github.com/dermtrack/skincare-system/internal/core/ports"
)

// DayGuard abstracts the fast-path duplicate-day check (Redis). The guard is
// advisory only: the unique (user_id, date) storage index remains the
// authoritative constraint, so guard failures are logged and ignored.
type DayGuard interface {
	IsLogged(ctx context.Context, userID, date string) (bool, error)
	Mark(ctx context.Context, userID, date string) error
	Clear(ctx context.Context, userID, date string) error
}

// DietService enforces the one-diet-log-per-day rule.
type DietService struct {
	repo  ports.DietLogRepository
	guard DayGuard
	log   zerolog.Logger
}

func NewDietService(repo ports.DietLogRepository, guard DayGuard, log zerolog.Logger) *DietService {
	return &DietService{repo: repo, guard: guard, log: log}
}

func (s *DietService) List(ctx context.Context, userID string) ([]*domain.DietLog, error) {
	return s.repo.FindAll(ctx, userID)
}

func (s *DietService) Create(ctx context.Context, userID string, in ports.DietLogInput) (*domain.DietLog, error) {
	if err := validateMeals(in.Meals); err != nil {
		return nil, err
	}

	// Fast path: answer duplicate days from the guard without a write
	// attempt. A guard hit is confirmed against storage before rejecting,
	// since a key can outlive its log (Clear failed after a delete); a
	// guard error never blocks the request.
	logged, err := s.guard.IsLogged(ctx, userID, in.Date)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("day guard check failed, falling through to storage")
	} else if logged {
		switch _, findErr := s.repo.FindByDate(ctx, userID, in.Date); {
		case findErr == nil:
			return nil, domain.ErrDietLogExists
		case errors.Is(findErr, domain.ErrDietLogNotFound):
			// Stale key: the day is actually free.
			if clearErr := s.guard.Clear(ctx, userID, in.Date); clearErr != nil {
				s.log.Warn().Err(clearErr).Str("user_id", userID).Msg("failed to clear stale day guard key")
			}
		default:
			s.log.Warn().Err(findErr).Str("user_id", userID).Msg("day guard confirmation failed, falling through to storage")
		}
	}

	entry := &domain.DietLog{
		UserID:      userID,
		Date:        in.Date,
		Meals:       in.Meals,
		Snacks:      in.Snacks,
		WaterIntake: in.WaterIntake,
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		if !errors.Is(err, domain.ErrDietLogExists) {
			s.log.Error().Err(err).Str("user_id", userID).Msg("failed to create diet log")
		}
		return nil, err
	}

	if markErr := s.guard.Mark(ctx, userID, in.Date); markErr != nil {
		s.log.Warn().Err(markErr).Str("user_id", userID).Msg("failed to mark day guard")
	}

	s.log.Info().Str("user_id", userID).Str("date", in.Date).Msg("diet log created")
	return created, nil
}

func (s *DietService) Update(ctx context.Context, userID, id string, in ports.DietLogInput) (*domain.DietLog, error) {
	if err := validateMeals(in.Meals); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, userID, id, in)
}

func (s *DietService) Delete(ctx context.Context, userID, id string) error {
	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}

	// Free the day so the user can log it again.
	if clearErr := s.guard.Clear(ctx, userID, deleted.Date); clearErr != nil {
		s.log.Warn().Err(clearErr).Str("user_id", userID).Msg("failed to clear day guard")
	}
	return nil
}

// validateMeals rejects meal maps with keys outside the known slots.
func validateMeals(meals map[string]string) error {
	for slot := range meals {
		if !domain.ValidMealSlot(slot) {
			return fmt.Errorf("%w: unknown meal slot %q", domain.ErrValidation, slot)
		}
	}
	return nil
}
