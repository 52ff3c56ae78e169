package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/minimart/storefront/internal/api"
	apihandler "github.com/minimart/storefront/internal/api/handler"
	"github.com/minimart/storefront/internal/core/domain"
)

type stubItemRepo struct {
	items  map[int]*domain.Item
	nextID int
}

func newStubItemRepo(seed ...domain.Item) *stubItemRepo {
	s := &stubItemRepo{items: make(map[int]*domain.Item), nextID: 1}
	for i := range seed {
		item := seed[i]
		item.ID = s.nextID
		s.items[item.ID] = &item
		s.nextID++
	}
	return s
}

func (s *stubItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	created := *item
	created.ID = s.nextID
	s.items[created.ID] = &created
	s.nextID++
	return &created, nil
}

func (s *stubItemRepo) CreateMany(ctx context.Context, items []domain.Item) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(items))
	for i := range items {
		created, err := s.Create(ctx, &items[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *created)
	}
	return out, nil
}

func (s *stubItemRepo) FindByID(_ context.Context, id int) (*domain.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (s *stubItemRepo) List(_ context.Context, page, limit int) ([]domain.Item, int64, error) {
	out := make([]domain.Item, 0, len(s.items))
	for id := 1; id < s.nextID; id++ {
		if item, ok := s.items[id]; ok {
			out = append(out, *item)
		}
	}
	start := (page - 1) * limit
	if start >= len(out) {
		return []domain.Item{}, int64(len(s.items)), nil
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], int64(len(s.items)), nil
}

func (s *stubItemRepo) Update(_ context.Context, item *domain.Item) (*domain.Item, error) {
	if _, ok := s.items[item.ID]; !ok {
		return nil, domain.ErrItemNotFound
	}
	updated := *item
	s.items[item.ID] = &updated
	return &updated, nil
}

func (s *stubItemRepo) Delete(_ context.Context, id int) error {
	if _, ok := s.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *stubItemRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

func newItemTestServer(repo *stubItemRepo) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	e.Validator = apihandler.NewValidator()

	h := NewItemHandler(repo)
	e.GET("/items", h.List)
	e.GET("/items/:id", h.Get)
	e.POST("/items", h.Create)
	e.POST("/items/batch", h.CreateBatch)
	e.PUT("/items/:id", h.Update)
	e.DELETE("/items/:id", h.Delete)
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListItemsDefaultsPagination(t *testing.T) {
	repo := newStubItemRepo(
		domain.Item{Name: "widget", Price: 9.99, Stock: 3},
		domain.Item{Name: "gadget", Price: 19.99, Stock: 1},
	)
	e := newItemTestServer(repo)

	rec := do(e, http.MethodGet, "/items", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var got listItemsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Page != 1 || got.Limit != 20 {
		t.Errorf("page/limit = %d/%d, want 1/20", got.Page, got.Limit)
	}
	if got.Total != 2 || len(got.Items) != 2 {
		t.Errorf("total = %d items = %d, want 2/2", got.Total, len(got.Items))
	}
}

func TestGetItemNotFound(t *testing.T) {
	e := newItemTestServer(newStubItemRepo())

	rec := do(e, http.MethodGet, "/items/42", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetItemRejectsNonNumericID(t *testing.T) {
	e := newItemTestServer(newStubItemRepo())

	rec := do(e, http.MethodGet, "/items/widget", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateItemAssignsSequentialIDs(t *testing.T) {
	repo := newStubItemRepo()
	e := newItemTestServer(repo)

	first := do(e, http.MethodPost, "/items", `{"name":"widget","price":9.99,"stock":3}`)
	second := do(e, http.MethodPost, "/items", `{"name":"gadget","price":19.99,"stock":1}`)
	if first.Code != http.StatusCreated || second.Code != http.StatusCreated {
		t.Fatalf("statuses = %d/%d, want 201/201", first.Code, second.Code)
	}

	var a, b domain.Item
	if err := json.Unmarshal(first.Body.Bytes(), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.ID != 1 || b.ID != 2 {
		t.Errorf("ids = %d/%d, want 1/2", a.ID, b.ID)
	}
}

func TestCreateItemValidation(t *testing.T) {
	e := newItemTestServer(newStubItemRepo())

	rec := do(e, http.MethodPost, "/items", `{"name":"","price":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateBatch(t *testing.T) {
	repo := newStubItemRepo()
	e := newItemTestServer(repo)

	rec := do(e, http.MethodPost, "/items/batch",
		`{"items":[{"name":"widget","price":9.99,"stock":3},{"name":"gadget","price":19.99,"stock":1}]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}
	if len(repo.items) != 2 {
		t.Errorf("persisted items = %d, want 2", len(repo.items))
	}
}

func TestUpdateAndDeleteItem(t *testing.T) {
	repo := newStubItemRepo(domain.Item{Name: "widget", Price: 9.99, Stock: 3})
	e := newItemTestServer(repo)

	rec := do(e, http.MethodPut, "/items/1", `{"name":"widget v2","price":12.50,"stock":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if repo.items[1].Name != "widget v2" {
		t.Errorf("name = %q, want widget v2", repo.items[1].Name)
	}

	rec = do(e, http.MethodDelete, "/items/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}
	if len(repo.items) != 0 {
		t.Error("item was not deleted")
	}

	rec = do(e, http.MethodDelete, "/items/1", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("repeat delete status = %d, want 404", rec.Code)
	}
}
