package ports

import (
	"context"

	"github.com/dermtrack/skincare-system/internal/core/domain"
)

// DietLogInput carries the editable diet log fields.
type DietLogInput struct {
	Date        string
	Meals       map[string]string
	Snacks      string
	WaterIntake int
}

// WellBeingInput carries the editable well-being fields. Exactly one of
// StressLevel (a band name) or StressScale (1-10, mapped to a band by the
// service) must be set; StressScale of zero means "not provided".
type WellBeingInput struct {
	Date        string
	Mood        string
	StressLevel string
	StressScale int
	SleepHours  float64
}

// DietService defines use-case operations for diet logs.
type DietService interface {
	List(ctx context.Context, userID string) ([]*domain.DietLog, error)
	Create(ctx context.Context, userID string, in DietLogInput) (*domain.DietLog, error)
	Update(ctx context.Context, userID, id string, in DietLogInput) (*domain.DietLog, error)
	Delete(ctx context.Context, userID, id string) error
}

// WellBeingService defines use-case operations for well-being logs.
type WellBeingService interface {
	List(ctx context.Context, userID string) ([]*domain.WellBeingLog, error)
	Create(ctx context.Context, userID string, in WellBeingInput) (*domain.WellBeingLog, error)
	Update(ctx context.Context, userID, id string, in WellBeingInput) (*domain.WellBeingLog, error)
	Delete(ctx context.Context, userID, id string) error
}
