package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront/internal/api/metrics"
	"github.com/minimart/storefront/internal/api/middleware"
	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
)

// CartHandler exposes the per-identity shopping flow. Every route sits
// behind the Auth middleware; the verified username keys all state.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Add handles POST /cart: appends a line to the caller's cart.
//
// @Summary      Add an item to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCartRequest  true  "Item and quantity (numeric strings accepted)"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req addCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	username := middleware.Username(c)
	cart, err := h.service.Add(c.Request().Context(), username, int(req.ItemID), int(req.Quantity))
	if err != nil {
		metrics.CartOpsTotal.WithLabelValues("add", "failure").Inc()
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			metrics.UpstreamFailuresTotal.WithLabelValues("get_item").Inc()
		}
		return err
	}

	metrics.CartOpsTotal.WithLabelValues("add", "success").Inc()
	return c.JSON(http.StatusOK, cartResponse{Message: "item added to cart", Cart: cart})
}

// Items handles GET /cart/items: lists the caller's cart in insertion order.
//
// @Summary      List cart items
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.CartLine
// @Failure      401  {object}  errorResponse
// @Router       /cart/items [get]
func (h *CartHandler) Items(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Items(middleware.Username(c)))
}

// Remove handles DELETE /cart/items: removes the first matching line.
//
// @Summary      Remove an item from the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      removeCartRequest  true  "Item to remove"
// @Success      200   {object}  removeCartResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /cart/items [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	var req removeCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	removed, err := h.service.Remove(middleware.Username(c), int(req.ItemID))
	if err != nil {
		metrics.CartOpsTotal.WithLabelValues("remove", "failure").Inc()
		return err
	}

	metrics.CartOpsTotal.WithLabelValues("remove", "success").Inc()
	return c.JSON(http.StatusOK, removeCartResponse{Message: "item removed from cart", DeletedItem: removed})
}

// Checkout handles POST /checkout: drains the cart and arms payment.
//
// @Summary      Checkout
// @Tags         checkout
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /checkout [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	if err := h.service.Checkout(middleware.Username(c)); err != nil {
		metrics.CheckoutsTotal.WithLabelValues("empty_cart").Inc()
		return err
	}
	metrics.CheckoutsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "checkout successful"})
}

// Pay handles POST /payment: consumes the checkout flag.
//
// @Summary      Pay
// @Tags         checkout
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /payment [post]
func (h *CartHandler) Pay(c echo.Context) error {
	if err := h.service.Pay(middleware.Username(c)); err != nil {
		metrics.PaymentsTotal.WithLabelValues("no_checkout").Inc()
		return err
	}
	metrics.PaymentsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "payment successful"})
}
