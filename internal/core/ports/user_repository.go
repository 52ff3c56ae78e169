package ports

import (
	"context"

	"github.com/minimart/storefront/internal/core/domain"
)

// UserRepository defines the interface for credential persistence in the
// data-access service.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
