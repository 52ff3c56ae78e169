package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "user"
)

// User is the durable credential record owned by the data-access layer.
// The stored password is compared with an exact match at login; this system
// is a mock storefront for contract testing and keeps the original's
// intentionally weak scheme.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthenticatedUser is what a successful credential validation yields: the
// identity plus the daily token minted for it. No session object exists; the
// token is recomputed on every verification.
type AuthenticatedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}
