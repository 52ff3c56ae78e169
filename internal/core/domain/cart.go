package domain

// CartLine is one (itemId, quantity) entry in a user's in-memory cart.
// Adding the same item twice appends a second line; lines are never merged.
type CartLine struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}
