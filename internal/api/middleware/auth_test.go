package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront/internal/core/token"
)

func runAuth(t *testing.T, secret string, mutate func(*http.Request)) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	mutate(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(secret)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuth_ValidTokenAndIdentity(t *testing.T) {
	tok := token.Derive("alice", "secret", time.Now())
	rec, called := runAuth(t, "secret", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
		r.Header.Set(IdentityHeader, "alice")
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingAuthorizationHeader(t *testing.T) {
	rec, called := runAuth(t, "secret", func(r *http.Request) {
		r.Header.Set(IdentityHeader, "alice")
	})
	if called {
		t.Fatalf("next called without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_MissingIdentityHeader(t *testing.T) {
	tok := token.Derive("alice", "secret", time.Now())
	rec, called := runAuth(t, "secret", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
	})
	if called {
		t.Fatalf("next called without an identity")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	rec, _ := runAuth(t, "secret", func(r *http.Request) {
		r.Header.Set("Authorization", "Token abc")
		r.Header.Set(IdentityHeader, "alice")
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_TokenForWrongIdentity(t *testing.T) {
	tok := token.Derive("alice", "secret", time.Now())
	rec, called := runAuth(t, "secret", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
		r.Header.Set(IdentityHeader, "bob")
	})
	if called {
		t.Fatalf("next called with a foreign token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_StaleToken(t *testing.T) {
	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	tok := token.Derive("alice", "secret", yesterday)
	rec, called := runAuth(t, "secret", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
		r.Header.Set(IdentityHeader, "alice")
	})
	if called {
		t.Fatalf("next called with yesterday's token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	tok := token.Derive("alice", "other-secret", time.Now())
	rec, _ := runAuth(t, "secret", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
		r.Header.Set(IdentityHeader, "alice")
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
