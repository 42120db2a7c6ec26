package ports

import (
	"context"

	"github.com/dermtrack/skincare-system/internal/core/domain"
)

// ProfileInput carries the editable profile fields from the transport layer.
// The owning user id always comes from the verified token, never from here.
type ProfileInput struct {
	SkinType   string
	Allergies  string
	DOB        string
	Gender     string
	Conditions string
}

// ProfileService defines use-case operations for profiles.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Save(ctx context.Context, userID string, in ProfileInput) (*domain.Profile, error)
}
