package ports

import (
	"context"

	"github.com/dermtrack/skincare-system/internal/core/domain"
)

// ProductRepository persists regimen products. Every operation that touches
// an existing row takes the owner's user id and applies it inside the query
// predicate, so a lookup, update or delete against a row owned by someone
// else behaves exactly like a lookup against a row that does not exist.
type ProductRepository interface {
	FindAll(ctx context.Context, userID string) ([]*domain.Product, error)
	FindOne(ctx context.Context, userID, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// Update applies fields with a single owner-conditioned operation and
	// returns the updated document.
	Update(ctx context.Context, userID, id string, in ProductInput) (*domain.Product, error)
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, userID, id string) (bool, error)
}

// UsageLogRepository persists product usage logs. Callers must resolve the
// parent product's ownership before invoking any of these; the repository
// itself only scopes by product id.
type UsageLogRepository interface {
	Create(ctx context.Context, l *domain.UsageLog) (*domain.UsageLog, error)
	// FindAllByProduct returns logs ordered by date_used descending.
	FindAllByProduct(ctx context.Context, productID string) ([]*domain.UsageLog, error)
	FindOne(ctx context.Context, productID, logID string) (*domain.UsageLog, error)
	Update(ctx context.Context, productID, logID string, in UsageLogInput) (*domain.UsageLog, error)
}
