package ports

import (
	"context"

	"github.com/minimart/storefront/internal/core/domain"
)

// ItemRepository defines the interface for catalog persistence in the
// data-access service.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	CreateMany(ctx context.Context, items []domain.Item) ([]domain.Item, error)
	FindByID(ctx context.Context, id int) (*domain.Item, error)
	List(ctx context.Context, page, limit int) ([]domain.Item, int64, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}
