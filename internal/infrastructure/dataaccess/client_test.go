package dataaccess

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/minimart/storefront/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, time.Second, zerolog.Nop())
}

func TestClient_GetItem(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/items/7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(domain.Item{ID: 7, Name: "mug", Price: 9.5, Stock: 3})
	}))

	item, err := client.GetItem(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if item.ID != 7 || item.Name != "mug" {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestClient_GetItem_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"item not found"}`, http.StatusNotFound)
	}))

	_, err := client.GetItem(context.Background(), 42)
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestClient_GetItem_ServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.GetItem(context.Background(), 1)
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestClient_ConnectionRefused(t *testing.T) {
	client := New("http://127.0.0.1:1", 200*time.Millisecond, zerolog.Nop())

	if _, err := client.GetItem(context.Background(), 1); !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	if _, err := client.FindRole(context.Background(), "alice"); !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestClient_Timeout(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	client.timeout = 50 * time.Millisecond
	client.httpc.Timeout = 50 * time.Millisecond

	if _, err := client.GetItem(context.Background(), 1); !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable on timeout, got %v", err)
	}
}

func TestClient_ValidateCredentials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/validate" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req struct{ Username, Password string }
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "alice" || req.Password != "wonder" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.AuthenticatedUser{
			ID: "u1", Username: "alice", Role: domain.RoleCustomer, Token: "tok",
		})
	}))

	user, err := client.ValidateCredentials(context.Background(), "alice", "wonder")
	if err != nil {
		t.Fatalf("ValidateCredentials failed: %v", err)
	}
	if user.Token != "tok" || user.Role != domain.RoleCustomer {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := client.ValidateCredentials(context.Background(), "alice", "nope"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestClient_FindRole(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Username string }
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "admin" {
			http.Error(w, `{"error":"user not found"}`, http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"role": domain.RoleAdmin})
	}))

	role, err := client.FindRole(context.Background(), "admin")
	if err != nil {
		t.Fatalf("FindRole failed: %v", err)
	}
	if role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", role)
	}

	if _, err := client.FindRole(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestClient_CreateUser_Conflict(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"user already exists"}`, http.StatusConflict)
	}))

	_, err := client.CreateUser(context.Background(), &domain.User{Username: "alice", Password: "x", Role: domain.RoleCustomer})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestClient_ListItems(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("expected page=2, got %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("expected limit=5, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []domain.Item{{ID: 6, Name: "pen"}},
			"total": 11, "page": 2, "limit": 5,
		})
	}))

	result, err := client.ListItems(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if result.Total != 11 || len(result.Items) != 1 || result.Items[0].ID != 6 {
		t.Fatalf("unexpected result: %+v", result)
	}
}
