package handler

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
	"github.com/minimart/storefront/internal/core/token"
)

// UserHandler serves credential records and is the only place a password is
// ever compared. On a successful validate it mints the caller's daily token
// with the shared secret; the gateways recompute and compare, never store.
type UserHandler struct {
	repo        ports.UserRepository
	tokenSecret string
	log         zerolog.Logger
}

func NewUserHandler(repo ports.UserRepository, tokenSecret string, log zerolog.Logger) *UserHandler {
	return &UserHandler{repo: repo, tokenSecret: tokenSecret, log: log}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=admin user"`
}

type validateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type roleRequest struct {
	Username string `json:"username" validate:"required"`
}

// Create handles POST /users.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.repo.Create(c.Request().Context(), &domain.User{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.repo.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Validate handles POST /users/validate. Unknown usernames and wrong
// passwords both answer 401 so callers cannot enumerate accounts. The
// password compare is an exact match against the stored value; the contract
// this mock exposes depends on that.
func (h *UserHandler) Validate(c echo.Context) error {
	var req validateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.repo.FindByUsername(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(req.Password)) != 1 {
		h.log.Info().Str("username", req.Username).Msg("credential validation rejected")
		return domain.ErrInvalidCredentials
	}

	return c.JSON(http.StatusOK, domain.AuthenticatedUser{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Token:    token.Derive(user.Username, h.tokenSecret, time.Now()),
	})
}

// Role handles POST /user/role.
func (h *UserHandler) Role(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.repo.FindByUsername(c.Request().Context(), req.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"role": user.Role})
}
