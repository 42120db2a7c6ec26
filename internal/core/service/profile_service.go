package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dermtrack/skincare-system/internal/core/domain"
	"github.com/dermtrack/skincare-system/internal/core/ports"
)

// ProfileService implements the one-profile-per-user contract. Save is an
// idempotent upsert: a second save for the same user replaces the first.
type ProfileService struct {
	repo ports.ProfileRepository
	log  zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, log zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, log: log}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *ProfileService) Save(ctx context.Context, userID string, in ports.ProfileInput) (*domain.Profile, error) {
	profile := &domain.Profile{
		UserID:     userID,
		SkinType:   domain.SkinType(in.SkinType),
		Allergies:  in.Allergies,
		DOB:        in.DOB,
		Gender:     in.Gender,
		Conditions: in.Conditions,
		UpdatedAt:  time.Now().UTC(),
	}

	saved, err := s.repo.Upsert(ctx, profile)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to save profile")
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Msg("profile saved")
	return saved, nil
}
