package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
)

// CartService owns the per-identity shopping flow: cart mutation plus the
// Shopping -> CheckedOut -> Paid state machine. The state machine is not
// atomic across checkout and payment: a checkout that is never paid leaves
// the flag armed indefinitely, and a retried checkout sees an already-empty
// cart. Both are properties of the original system, kept on purpose.
type CartService struct {
	store   ports.CartStore
	catalog ports.Catalog
	logger  zerolog.Logger
}

func NewCartService(store ports.CartStore, catalog ports.Catalog, logger zerolog.Logger) *CartService {
	return &CartService{store: store, catalog: catalog, logger: logger}
}

func (s *CartService) Add(ctx context.Context, username string, itemID, quantity int) ([]domain.CartLine, error) {
	if itemID <= 0 {
		return nil, fmt.Errorf("%w: itemId must be a positive integer", domain.ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be a positive integer", domain.ErrValidation)
	}

	// Existence check against the catalog. ErrItemNotFound passes through
	// untouched so the gateway can answer 404 rather than 400.
	if _, err := s.catalog.GetItem(ctx, itemID); err != nil {
		return nil, err
	}

	cart := s.store.Append(username, domain.CartLine{ItemID: itemID, Quantity: quantity})
	s.logger.Info().Str("username", username).Int("item_id", itemID).Int("quantity", quantity).Msg("cart line added")
	return cart, nil
}

func (s *CartService) Items(username string) []domain.CartLine {
	return s.store.Lines(username)
}

func (s *CartService) Remove(username string, itemID int) (domain.CartLine, error) {
	if itemID <= 0 {
		return domain.CartLine{}, fmt.Errorf("%w: itemId must be a positive integer", domain.ErrValidation)
	}

	removed, ok := s.store.RemoveFirst(username, itemID)
	if !ok {
		// Nothing to remove is an input error, not a missing resource: the
		// cart is the caller's own state, not a lookup target.
		return domain.CartLine{}, fmt.Errorf("%w: item %d is not in the cart", domain.ErrValidation, itemID)
	}

	s.logger.Info().Str("username", username).Int("item_id", itemID).Msg("cart line removed")
	return removed, nil
}

func (s *CartService) Checkout(username string) error {
	if len(s.store.Lines(username)) == 0 {
		return domain.ErrEmptyCart
	}

	drained := s.store.Drain(username)
	s.store.SetCheckedOut(username, true)

	s.logger.Info().Str("username", username).Int("lines", len(drained)).Msg("checkout completed")
	return nil
}

func (s *CartService) Pay(username string) error {
	if !s.store.CheckedOut(username) {
		return domain.ErrNoCheckout
	}

	// Payment is simulated: once armed, it succeeds unconditionally. The flag
	// is cleared regardless, permitting exactly one payment per checkout.
	s.store.SetCheckedOut(username, false)

	s.logger.Info().Str("username", username).Msg("payment completed")
	return nil
}
