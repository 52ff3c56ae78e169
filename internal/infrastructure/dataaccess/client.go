// Package dataaccess is the HTTP client for the data-access layer, the only
// durable collaborator in the system. Every call carries a bounded timeout;
// transport failures and 5xx responses are collapsed into
// domain.ErrUpstreamUnavailable so wire details never reach a caller, while
// lookup misses stay distinct (domain.ErrItemNotFound, domain.ErrUserNotFound,
// domain.ErrInvalidCredentials).
package dataaccess

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

type Client struct {
	baseURL string
	httpc   *http.Client
	timeout time.Duration
	log     zerolog.Logger
}

// New creates a Client for the data-access service at baseURL. A default
// timeout is applied when none is provided.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		timeout: timeout,
		log:     log,
	}
}

// --- Catalog ---

func (c *Client) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	var item domain.Item
	err := c.do(ctx, http.MethodGet, "/items/"+strconv.Itoa(id), nil, &item, func(status int) error {
		if status == http.StatusNotFound {
			return domain.ErrItemNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) ListItems(ctx context.Context, page, limit int) (*ports.ListItemsResult, error) {
	var result ports.ListItemsResult
	path := fmt.Sprintf("/items?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &result, nil); err != nil {
		return nil, err
	}
	return &result, nil
}

// --- CatalogAdmin ---

func (c *Client) CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	var created domain.Item
	if err := c.do(ctx, http.MethodPost, "/items", itemPayload(item), &created, nil); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) CreateItems(ctx context.Context, items []domain.Item) ([]domain.Item, error) {
	payload := struct {
		Items []itemRequest `json:"items"`
	}{Items: make([]itemRequest, len(items))}
	for i := range items {
		payload.Items[i] = *itemPayload(&items[i])
	}

	var out struct {
		Items []domain.Item `json:"items"`
	}
	if err := c.do(ctx, http.MethodPost, "/items/batch", payload, &out, nil); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) UpdateItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	var updated domain.Item
	err := c.do(ctx, http.MethodPut, "/items/"+strconv.Itoa(item.ID), itemPayload(item), &updated, func(status int) error {
		if status == http.StatusNotFound {
			return domain.ErrItemNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteItem(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/items/"+strconv.Itoa(id), nil, nil, func(status int) error {
		if status == http.StatusNotFound {
			return domain.ErrItemNotFound
		}
		return nil
	})
}

// --- CredentialDirectory ---

func (c *Client) ValidateCredentials(ctx context.Context, username, password string) (*domain.AuthenticatedUser, error) {
	payload := map[string]string{"username": username, "password": password}
	var user domain.AuthenticatedUser
	err := c.do(ctx, http.MethodPost, "/users/validate", payload, &user, func(status int) error {
		// The data-access layer answers 401 for unknown usernames and wrong
		// passwords alike; keep that collapse intact here.
		if status == http.StatusUnauthorized {
			return domain.ErrInvalidCredentials
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) FindRole(ctx context.Context, username string) (string, error) {
	payload := map[string]string{"username": username}
	var out struct {
		Role string `json:"role"`
	}
	err := c.do(ctx, http.MethodPost, "/user/role", payload, &out, func(status int) error {
		if status == http.StatusNotFound {
			return domain.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return out.Role, nil
}

// --- UserAdmin ---

func (c *Client) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	payload := map[string]string{
		"username": user.Username,
		"password": user.Password,
		"role":     user.Role,
	}
	var created domain.User
	err := c.do(ctx, http.MethodPost, "/users", payload, &created, func(status int) error {
		if status == http.StatusConflict {
			return domain.ErrUserExists
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := c.do(ctx, http.MethodGet, "/users/"+id, nil, &user, func(status int) error {
		if status == http.StatusNotFound {
			return domain.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Ping checks the data-access service's liveness endpoint. Used by the
// gateways' readiness probes.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}

// --- wire helpers ---

type itemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

func itemPayload(item *domain.Item) *itemRequest {
	return &itemRequest{Name: item.Name, Price: item.Price, Stock: item.Stock}
}

// do performs one round trip. mapStatus translates well-known non-2xx codes
// into domain errors; anything unmapped becomes ErrUpstreamUnavailable.
func (c *Client) do(ctx context.Context, method, path string, body, out any, mapStatus func(int) error) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("dataaccess: marshal %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("dataaccess: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("data-access call failed")
		return domain.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.log.Warn().Err(err).Str("path", path).Msg("data-access response undecodable")
			return domain.ErrUpstreamUnavailable
		}
		return nil
	}

	if mapStatus != nil {
		if mapped := mapStatus(resp.StatusCode); mapped != nil {
			return mapped
		}
	}

	c.log.Warn().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("unexpected data-access status")
	return domain.ErrUpstreamUnavailable
}
