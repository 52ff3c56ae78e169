package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
)

// ItemHandler forwards privileged catalog writes (and reads) to the
// data-access layer. Authorization already happened in the Guard middleware.
type ItemHandler struct {
	catalog ports.Catalog
	admin   ports.CatalogAdmin
}

func NewItemHandler(catalog ports.Catalog, admin ports.CatalogAdmin) *ItemHandler {
	return &ItemHandler{catalog: catalog, admin: admin}
}

type itemRequest struct {
	Name  string  `json:"name"  validate:"required"`
	Price float64 `json:"price" validate:"required,gt=0"`
	Stock int     `json:"stock" validate:"gte=0"`
}

type batchItemsRequest struct {
	Items []itemRequest `json:"items" validate:"required,min=1,dive"`
}

// List handles GET /admin/items?page&limit.
func (h *ItemHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	result, err := h.catalog.ListItems(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Get handles GET /admin/items/:id.
func (h *ItemHandler) Get(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}
	item, err := h.catalog.GetItem(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /admin/items.
func (h *ItemHandler) Create(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.admin.CreateItem(c.Request().Context(), &domain.Item{
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// CreateBatch handles POST /admin/items/batch.
func (h *ItemHandler) CreateBatch(c echo.Context) error {
	var req batchItemsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]domain.Item, len(req.Items))
	for i, r := range req.Items {
		items[i] = domain.Item{Name: r.Name, Price: r.Price, Stock: r.Stock}
	}

	created, err := h.admin.CreateItems(c.Request().Context(), items)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"items": created})
}

// Update handles PUT /admin/items/:id.
func (h *ItemHandler) Update(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.admin.UpdateItem(c.Request().Context(), &domain.Item{
		ID:    id,
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /admin/items/:id.
func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}
	if err := h.admin.DeleteItem(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func itemID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "item id must be a positive integer")
	}
	return id, nil
}
