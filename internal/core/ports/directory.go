package ports

import (
	"context"

	"github.com/minimart/storefront/internal/core/domain"
)

// CredentialDirectory is the slice of the data-access layer the gateways need
// for authentication. Implementations must keep the two failure families
// apart: domain.ErrInvalidCredentials / domain.ErrUserNotFound for lookup
// misses, domain.ErrUpstreamUnavailable for transport failures.
type CredentialDirectory interface {
	// ValidateCredentials checks a username/password pair against the stored
	// credential and, on success, returns the identity with its daily token.
	ValidateCredentials(ctx context.Context, username, password string) (*domain.AuthenticatedUser, error)

	// FindRole fetches the current role for an identity. Never cached; the
	// admin gateway calls this on every request.
	FindRole(ctx context.Context, username string) (string, error)
}

// LoginThrottle bounds login attempts per username over a rolling window.
type LoginThrottle interface {
	// Allow reports whether another attempt is permitted. An infrastructure
	// error means the throttle itself is unavailable, not a denial.
	Allow(ctx context.Context, username string) (bool, error)
}
