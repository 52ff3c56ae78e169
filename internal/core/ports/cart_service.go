package ports

import (
	"context"

	"github.com/minimart/storefront/internal/core/domain"
)

// CartService owns the cart invariants and the checkout/payment state
// machine. All operations assume the identity was already verified by the
// gateway.
type CartService interface {
	// Add validates the line, confirms the item exists in the catalog, and
	// appends it. Returns the full cart after the append.
	Add(ctx context.Context, username string, itemID, quantity int) ([]domain.CartLine, error)

	// Items returns the identity's cart in insertion order.
	Items(username string) []domain.CartLine

	// Remove deletes the first line matching itemID and returns it. A cart
	// with no matching line is an input error, not a missing resource.
	Remove(username string, itemID int) (domain.CartLine, error)

	// Checkout drains a non-empty cart and arms the payment flag.
	Checkout(username string) error

	// Pay consumes the payment flag. Payment itself always succeeds; there is
	// no external processor in this mock.
	Pay(username string) error
}
