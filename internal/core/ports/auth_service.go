package ports

import (
	"context"

	"github.com/minimart/storefront/internal/core/domain"
)

type AuthService interface {
	// Login validates credentials and returns the identity with its daily
	// token. All credential failures surface as domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.AuthenticatedUser, error)
}
