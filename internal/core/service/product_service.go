package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dermtrack/skincare-system/internal/core/domain"
	"github.com/dermtrack/skincare-system/internal/core/ports"
)

// ProductService implements regimen product operations and their usage logs.
// Usage logs carry no owner field of their own: every usage operation first
// resolves the parent product under the caller's identity, so a foreign or
// missing product hides its logs entirely.
type ProductService struct {
	products  ports.ProductRepository
	usageLogs ports.UsageLogRepository
	log       zerolog.Logger
}

func NewProductService(products ports.ProductRepository, usageLogs ports.UsageLogRepository, log zerolog.Logger) *ProductService {
	return &ProductService{products: products, usageLogs: usageLogs, log: log}
}

func (s *ProductService) List(ctx context.Context, userID string) ([]*domain.Product, error) {
	return s.products.FindAll(ctx, userID)
}

func (s *ProductService) Create(ctx context.Context, userID string, in ports.ProductInput) (*domain.Product, error) {
	product := &domain.Product{
		UserID:    userID,
		Name:      in.Name,
		Type:      in.Type,
		Frequency: domain.Frequency(in.Frequency),
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Notes:     in.Notes,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to create product")
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Str("product_id", created.ID).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, userID, id string) (*domain.Product, error) {
	return s.products.FindOne(ctx, userID, id)
}

func (s *ProductService) Update(ctx context.Context, userID, id string, in ports.ProductInput) (*domain.Product, error) {
	return s.products.Update(ctx, userID, id, in)
}

func (s *ProductService) Delete(ctx context.Context, userID, id string) error {
	removed, err := s.products.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrProductNotFound
	}
	s.log.Info().Str("user_id", userID).Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) AddUsage(ctx context.Context, userID, productID string, in ports.UsageLogInput) (*domain.UsageLog, error) {
	if _, err := s.products.FindOne(ctx, userID, productID); err != nil {
		return nil, err
	}

	dateUsed := in.DateUsed
	if dateUsed == "" {
		dateUsed = time.Now().UTC().Format("2006-01-02")
	}

	usage := &domain.UsageLog{
		ProductID:   productID,
		DateUsed:    dateUsed,
		Notes:       in.Notes,
		SideEffects: in.SideEffects,
	}

	created, err := s.usageLogs.Create(ctx, usage)
	if err != nil {
		s.log.Error().Err(err).Str("product_id", productID).Msg("failed to create usage log")
		return nil, err
	}
	return created, nil
}

func (s *ProductService) ListUsage(ctx context.Context, userID, productID string) ([]*domain.UsageLog, error) {
	if _, err := s.products.FindOne(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.usageLogs.FindAllByProduct(ctx, productID)
}

func (s *ProductService) GetUsage(ctx context.Context, userID, productID, logID string) (*domain.UsageLog, error) {
	if _, err := s.products.FindOne(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.usageLogs.FindOne(ctx, productID, logID)
}

func (s *ProductService) UpdateUsage(ctx context.Context, userID, productID, logID string, in ports.UsageLogInput) (*domain.UsageLog, error) {
	if _, err := s.products.FindOne(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.usageLogs.Update(ctx, productID, logID, in)
}
