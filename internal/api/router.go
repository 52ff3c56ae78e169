package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/minimart/storefront/docs"
	"github.com/minimart/storefront/internal/api/handler"
	"github.com/minimart/storefront/internal/api/middleware"
	"github.com/minimart/storefront/internal/core/ports"
	"github.com/minimart/storefront/internal/core/service"
	"github.com/minimart/storefront/internal/memstore"
)

// Dependencies carries everything the storefront gateway composes.
type Dependencies struct {
	Directory   ports.CredentialDirectory
	Catalog     ports.Catalog
	Throttle    ports.LoginThrottle // nil disables login throttling
	TokenSecret string
	Readiness   map[string]handler.UpstreamPinger
	Logger      zerolog.Logger
}

// NewRouter builds the storefront gateway: login, public catalog browsing,
// and the authenticated cart/checkout/payment flow. All per-identity state
// lives in a fresh in-process store owned by this router.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Services ---
	authService := service.NewAuthService(deps.Directory, deps.Throttle, deps.Logger)
	cartService := service.NewCartService(memstore.NewCartStore(), deps.Catalog, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	cartHandler := handler.NewCartHandler(cartService)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.GET("/items", catalogHandler.List)
	e.GET("/items/:id", catalogHandler.Get)

	// --- Authenticated routes (identity + daily token required) ---
	authed := e.Group("", middleware.Auth(deps.TokenSecret))
	authed.POST("/cart", cartHandler.Add)
	authed.GET("/cart/items", cartHandler.Items)
	authed.DELETE("/cart/items", cartHandler.Remove)
	authed.POST("/checkout", cartHandler.Checkout)
	authed.POST("/payment", cartHandler.Pay)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Readiness).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
