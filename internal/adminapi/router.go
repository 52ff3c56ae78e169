// Package adminapi is the privileged trust boundary. Every route re-checks
// the caller's role against the directory and verifies the daily token; it
// has no cart access and holds no state of its own.
package adminapi

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/minimart/storefront/internal/adminapi/handler"
	"github.com/minimart/storefront/internal/adminapi/middleware"
	"github.com/minimart/storefront/internal/api"
	apihandler "github.com/minimart/storefront/internal/api/handler"
	"github.com/minimart/storefront/internal/core/ports"
)

// Dependencies carries everything the admin gateway composes.
type Dependencies struct {
	Directory   ports.CredentialDirectory
	Catalog     ports.Catalog
	Admin       ports.CatalogAdmin
	Users       ports.UserAdmin
	TokenSecret string
	Readiness   map[string]apihandler.UpstreamPinger
	Logger      zerolog.Logger
}

// NewRouter builds the admin gateway.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(deps.Logger)
	e.Validator = apihandler.NewValidator()

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	itemHandler := handler.NewItemHandler(deps.Catalog, deps.Admin)
	userHandler := handler.NewUserHandler(deps.Users)

	admin := e.Group("/admin", middleware.Guard(deps.Directory, deps.TokenSecret))
	admin.GET("/items", itemHandler.List)
	admin.GET("/items/:id", itemHandler.Get)
	admin.POST("/items", itemHandler.Create)
	admin.POST("/items/batch", itemHandler.CreateBatch)
	admin.PUT("/items/:id", itemHandler.Update)
	admin.DELETE("/items/:id", itemHandler.Delete)
	admin.POST("/users", userHandler.Create)
	admin.GET("/users/:id", userHandler.Get)

	healthHandler := apihandler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", apihandler.NewReadinessHandler(deps.Readiness).Readiness)

	return e
}
