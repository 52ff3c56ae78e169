// Package dataapi is the data-access layer: the only service that touches
// durable storage. Both gateways call it over HTTP and trust its answers.
package dataapi

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/minimart/storefront/internal/api"
	apihandler "github.com/minimart/storefront/internal/api/handler"
	"github.com/minimart/storefront/internal/core/ports"
	"github.com/minimart/storefront/internal/dataapi/handler"
)

// Dependencies carries everything the data-access service composes.
type Dependencies struct {
	Items       ports.ItemRepository
	Users       ports.UserRepository
	TokenSecret string
	Readiness   map[string]apihandler.UpstreamPinger
	Logger      zerolog.Logger
}

// NewRouter builds the data-access service.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(deps.Logger)
	e.Validator = apihandler.NewValidator()

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dataaccess"))

	itemHandler := handler.NewItemHandler(deps.Items)
	userHandler := handler.NewUserHandler(deps.Users, deps.TokenSecret, deps.Logger)

	e.GET("/items", itemHandler.List)
	e.GET("/items/:id", itemHandler.Get)
	e.POST("/items", itemHandler.Create)
	e.POST("/items/batch", itemHandler.CreateBatch)
	e.PUT("/items/:id", itemHandler.Update)
	e.DELETE("/items/:id", itemHandler.Delete)

	e.POST("/users", userHandler.Create)
	e.GET("/users/:id", userHandler.Get)
	e.POST("/users/validate", userHandler.Validate)
	e.POST("/user/role", userHandler.Role)

	healthHandler := apihandler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", apihandler.NewReadinessHandler(deps.Readiness).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
