package ports

import (
	"context"

	"github.com/dermtrack/skincare-system/internal/core/domain"
)

// ProductInput carries the editable product fields.
type ProductInput struct {
	Name      string
	Type      string
	Frequency string
	StartDate string
	EndDate   string
	Notes     string
}

// UsageLogInput carries the editable usage log fields. An empty DateUsed on
// create defaults to today.
type UsageLogInput struct {
	DateUsed    string
	Notes       string
	SideEffects string
}

// ProductService defines use-case operations for products and their usage
// logs. The userID argument is always the verified caller identity.
type ProductService interface {
	List(ctx context.Context, userID string) ([]*domain.Product, error)
	Create(ctx context.Context, userID string, in ProductInput) (*domain.Product, error)
	Get(ctx context.Context, userID, id string) (*domain.Product, error)
	Update(ctx context.Context, userID, id string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, userID, id string) error

	AddUsage(ctx context.Context, userID, productID string, in UsageLogInput) (*domain.UsageLog, error)
	ListUsage(ctx context.Context, userID, productID string) ([]*domain.UsageLog, error)
	GetUsage(ctx context.Context, userID, productID, logID string) (*domain.UsageLog, error)
	UpdateUsage(ctx context.Context, userID, productID, logID string, in UsageLogInput) (*domain.UsageLog, error)
}
