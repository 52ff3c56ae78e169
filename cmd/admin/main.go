// The admin service is the privileged gateway: catalog and account management
// behind a role check plus the same daily token the storefront verifies. It
// owns no state; every operation is forwarded to the data-access service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minimart/storefront/internal/adminapi"
	"github.com/minimart/storefront/internal/api/handler"
	"github.com/minimart/storefront/internal/infrastructure/dataaccess"
	"github.com/minimart/storefront/internal/pkg/config"
	"github.com/minimart/storefront/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Service: "admin",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	secret, fallback := cfg.ResolveTokenSecret()
	if fallback {
		log.Warn().Msg("TOKEN_SECRET is not set, using the development fallback secret")
	}

	upstream := dataaccess.New(cfg.DataAccessURL, cfg.UpstreamTimeout, log)

	e := adminapi.NewRouter(adminapi.Dependencies{
		Directory:   upstream,
		Catalog:     upstream,
		Admin:       upstream,
		Users:       upstream,
		TokenSecret: secret,
		Readiness:   map[string]handler.UpstreamPinger{"dataaccess": upstream},
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.AdminPort).Msg("starting admin gateway")
		if err := e.Start(":" + cfg.AdminPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
		os.Exit(1)
	}
}
