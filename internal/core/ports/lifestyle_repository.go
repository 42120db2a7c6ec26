package ports

import (
	"context"

	"github.com/dermtrack/skincare-system/internal/core/domain"
)

// DietLogRepository persists diet logs. Create relies on a unique
// (user_id, date) index and reports a duplicate day as
// domain.ErrDietLogExists, making the one-per-day check atomic.
type DietLogRepository interface {
	// FindAll returns the user's logs ordered by date descending.
	FindAll(ctx context.Context, userID string) ([]*domain.DietLog, error)
	// FindByDate returns the user's log for a calendar day, or
	// domain.ErrDietLogNotFound when none exists.
	FindByDate(ctx context.Context, userID, date string) (*domain.DietLog, error)
	Create(ctx context.Context, l *domain.DietLog) (*domain.DietLog, error)
	Update(ctx context.Context, userID, id string, in DietLogInput) (*domain.DietLog, error)
	// Delete removes the log and returns it, so callers can invalidate
	// anything keyed on its date. Missing or foreign rows yield
	// domain.ErrDietLogNotFound.
	Delete(ctx context.Context, userID, id string) (*domain.DietLog, error)
}

// WellBeingRepository persists well-being logs. No day-uniqueness applies.
type WellBeingRepository interface {
	// FindAll returns the user's logs, most recently created first.
	FindAll(ctx context.Context, userID string) ([]*domain.WellBeingLog, error)
	Create(ctx context.Context, l *domain.WellBeingLog) (*domain.WellBeingLog, error)
	// Update applies the fields with a single owner-conditioned operation.
	// An empty Date keeps the stored date.
	Update(ctx context.Context, userID, id string, in WellBeingInput) (*domain.WellBeingLog, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}
