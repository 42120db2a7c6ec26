package ports

import (
	"context"

	"github.com/dermtrack/skincare-system/internal/core/domain"
)

// ProfileRepository persists user profiles.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	// Upsert creates or replaces the profile keyed on its UserID as a single
	// atomic operation, so repeated saves never produce a second record.
	Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
}
