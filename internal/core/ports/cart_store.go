package ports

import "github.com/minimart/storefront/internal/core/domain"

// CartStore holds all per-identity storefront state: the cart lines and the
// checkout flag. State is process-local and lost on restart by design; the
// store only guarantees structural integrity under concurrent access, not
// serialization of business logic.
type CartStore interface {
	// Append adds a line to the identity's cart and returns the full cart
	// after the append. Duplicate item IDs produce separate lines.
	Append(username string, line domain.CartLine) []domain.CartLine

	// Lines returns a copy of the identity's cart in insertion order, empty
	// slice (never nil) when there is none.
	Lines(username string) []domain.CartLine

	// RemoveFirst removes the first line matching itemID. The second return
	// is false when no line matched.
	RemoveFirst(username string, itemID int) (domain.CartLine, bool)

	// Drain empties the identity's cart and returns the drained lines.
	Drain(username string) []domain.CartLine

	// SetCheckedOut sets or clears the identity's checkout flag.
	SetCheckedOut(username string, done bool)

	// CheckedOut reports the identity's checkout flag.
	CheckedOut(username string) bool
}
