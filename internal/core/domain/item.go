package domain

import "time"

// Item is a catalog entry held by the data-access layer. Item IDs are small
// positive integers assigned at creation and referenced by cart lines.
type Item struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
