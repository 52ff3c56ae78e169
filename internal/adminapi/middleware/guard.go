package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
	"github.com/minimart/storefront/internal/core/token"
)

// IdentityHeader carries the caller's username, same contract as the
// storefront gateway.
const IdentityHeader = "X-Username"

// Guard protects every admin route. Check order is fixed and documented:
// the role is fetched fresh from the directory FIRST, then the token is
// verified. A non-admin caller therefore sees 403 even when their token is
// garbage; an admin with a bad token sees 401.
func Guard(directory ports.CredentialDirectory, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username := c.Request().Header.Get(IdentityHeader)
			presented := bearerToken(c)
			if username == "" || presented == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing identity or token")
			}

			role, err := directory.FindRole(c.Request().Context(), username)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					// Unknown identities fail closed as an authentication
					// failure, never revealing whether the account exists.
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
				}
				return err
			}
			if role != domain.RoleAdmin {
				return domain.ErrForbidden
			}

			if !token.Verify(username, presented, secret, time.Now()) {
				return domain.ErrInvalidToken
			}

			c.Set("username", username)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	const prefix = "Bearer "
	header := c.Request().Header.Get("Authorization")
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}
