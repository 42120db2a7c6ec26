package ports

import (
	"context"

	"github.com/dermtrack/skincare-system/internal/core/domain"
)

// AuthService handles registration and login. Login returns a signed JWT
// carrying the user id claim.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
