package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront/internal/core/token"
)

// IdentityHeader carries the caller's username on every privileged request.
// There is no session: the identity travels out-of-band next to the token
// and both are required.
const IdentityHeader = "X-Username"

// Auth validates the presented identity+token pair against the token derived
// for today and injects the username into context. No lookup happens here;
// verification is pure recomputation against the shared secret.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			username := c.Request().Header.Get(IdentityHeader)
			if username == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing identity header")
			}

			if !token.Verify(username, parts[1], secret, time.Now()) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("username", username)
			return next(c)
		}
	}
}

// Username extracts the verified identity injected by Auth.
func Username(c echo.Context) string {
	username, _ := c.Get("username").(string)
	return username
}
