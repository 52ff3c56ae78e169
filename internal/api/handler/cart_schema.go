package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minimart/storefront/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// flexInt accepts a JSON number or a numeric string ("3" and 3 both parse).
// Anything non-numeric is a bind failure.
type flexInt int

func (v *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("value %q is not an integer", s)
	}
	*v = flexInt(n)
	return nil
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type addCartRequest struct {
	ItemID   flexInt `json:"itemId"`
	Quantity flexInt `json:"quantity"`
}

type removeCartRequest struct {
	ItemID flexInt `json:"itemId"`
}

type cartResponse struct {
	Message string            `json:"message"`
	Cart    []domain.CartLine `json:"cart"`
}

type removeCartResponse struct {
	Message     string          `json:"message"`
	DeletedItem domain.CartLine `json:"deletedItem"`
}

type messageResponse struct {
	Message string `json:"message"`
}
