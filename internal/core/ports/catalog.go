package ports

import (
	"context"

	"github.com/minimart/storefront/internal/core/domain"
)

// ListItemsResult is one page of catalog items.
type ListItemsResult struct {
	Items []domain.Item `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// Catalog is the read-only view of the item store used by the storefront:
// existence checks on cart add and public browsing.
type Catalog interface {
	GetItem(ctx context.Context, id int) (*domain.Item, error)
	ListItems(ctx context.Context, page, limit int) (*ListItemsResult, error)
}

// CatalogAdmin is the privileged write surface the admin gateway forwards to.
type CatalogAdmin interface {
	CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error)
	CreateItems(ctx context.Context, items []domain.Item) ([]domain.Item, error)
	UpdateItem(ctx context.Context, item *domain.Item) (*domain.Item, error)
	DeleteItem(ctx context.Context, id int) error
}

// UserAdmin is the privileged user-management surface.
type UserAdmin interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
