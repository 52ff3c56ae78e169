package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
)

// AuthService implements the storefront login flow. Credentials are checked
// by the data-access layer, which also mints the daily token; no session is
// created here or anywhere else.
type AuthService struct {
	directory ports.CredentialDirectory
	throttle  ports.LoginThrottle
	logger    zerolog.Logger
}

// NewAuthService builds an AuthService. throttle may be nil, in which case
// login attempts are unbounded.
func NewAuthService(directory ports.CredentialDirectory, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{directory: directory, throttle: throttle, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.AuthenticatedUser, error) {
	if username == "" || password == "" {
		return nil, domain.ErrValidation
	}

	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, username)
		if err != nil {
			// The throttle is best-effort; losing Redis must not lock
			// everyone out of a mock storefront.
			s.logger.Warn().Err(err).Str("username", username).Msg("login throttle unavailable, allowing attempt")
		} else if !allowed {
			s.logger.Info().Str("username", username).Msg("login throttled")
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.directory.ValidateCredentials(ctx, username, password)
	if err != nil {
		// Unknown username and wrong password collapse into one failure so
		// the response never confirms whether an account exists.
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Info().Str("username", username).Msg("login rejected")
			return nil, domain.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Str("username", username).Msg("credential check failed upstream")
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("login succeeded")
	return user, nil
}
