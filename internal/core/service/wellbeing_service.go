package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dermtrack/skincare-system/internal/core/domain"
	"github.com/dermtrack/skincare-system/internal/core/ports"
)

// WellBeingService implements mood/stress/sleep logging. Several entries per
// day are allowed; only the mood and stress vocabularies are constrained.
type WellBeingService struct {
	repo ports.WellBeingRepository
	log  zerolog.Logger
}

func NewWellBeingService(repo ports.WellBeingRepository, log zerolog.Logger) *WellBeingService {
	return &WellBeingService{repo: repo, log: log}
}

func (s *WellBeingService) List(ctx context.Context, userID string) ([]*domain.WellBeingLog, error) {
	return s.repo.FindAll(ctx, userID)
}

func (s *WellBeingService) Create(ctx context.Context, userID string, in ports.WellBeingInput) (*domain.WellBeingLog, error) {
	mood, err := parseMood(in.Mood)
	if err != nil {
		return nil, err
	}
	stress, err := resolveStress(in)
	if err != nil {
		return nil, err
	}

	date := in.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	entry := &domain.WellBeingLog{
		UserID:      userID,
		Date:        date,
		Mood:        mood,
		StressLevel: stress,
		SleepHours:  in.SleepHours,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to create well-being log")
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Str("date", date).Str("mood", string(mood)).Msg("well-being log created")
	return created, nil
}

func (s *WellBeingService) Update(ctx context.Context, userID, id string, in ports.WellBeingInput) (*domain.WellBeingLog, error) {
	if _, err := parseMood(in.Mood); err != nil {
		return nil, err
	}
	stress, err := resolveStress(in)
	if err != nil {
		return nil, err
	}
	in.StressLevel = string(stress)
	in.StressScale = 0

	return s.repo.Update(ctx, userID, id, in)
}

func (s *WellBeingService) Delete(ctx context.Context, userID, id string) error {
	removed, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrWellBeingLogNotFound
	}
	return nil
}

func parseMood(raw string) (domain.Mood, error) {
	switch m := domain.Mood(raw); m {
	case domain.MoodHappy, domain.MoodNeutral, domain.MoodSad, domain.MoodAnxious, domain.MoodAngry:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown mood %q", domain.ErrValidation, raw)
}

// resolveStress picks the stored band. A numeric scale (1-10) wins over a
// band name and is mapped deterministically by domain.StressBand.
func resolveStress(in ports.WellBeingInput) (domain.StressLevel, error) {
	if in.StressScale != 0 {
		if in.StressScale < 1 || in.StressScale > 10 {
			return "", fmt.Errorf("%w: stress scale must be between 1 and 10", domain.ErrValidation)
		}
		return domain.StressBand(in.StressScale), nil
	}

	switch lvl := domain.StressLevel(in.StressLevel); lvl {
	case domain.StressLow, domain.StressModerate, domain.StressHigh:
		return lvl, nil
	case "":
		return "", fmt.Errorf("%w: stress level or stress scale is required", domain.ErrValidation)
	}
	return "", fmt.Errorf("%w: unknown stress level %q", domain.ErrValidation, in.StressLevel)
}
