// The storefront service is the customer-facing gateway: login, catalog
// browsing, and the authenticated cart, checkout and payment flow. It holds
// cart state in process and forwards everything durable to the data-access
// service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/minimart/storefront/internal/api"
	"github.com/minimart/storefront/internal/api/handler"
	"github.com/minimart/storefront/internal/core/ports"
	"github.com/minimart/storefront/internal/infrastructure/dataaccess"
	redisdb "github.com/minimart/storefront/internal/infrastructure/db/redis"
	"github.com/minimart/storefront/internal/pkg/config"
	"github.com/minimart/storefront/pkg/logger"
)

// redisPinger adapts the redis client to the readiness probe.
type redisPinger struct {
	client *goredis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Service: "storefront",
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
	readiness := map[string]handler.UpstreamPinger{"dataaccess": upstream}

	// Login throttling is optional: without Redis the gateway still serves.
	var throttle ports.LoginThrottle
	if rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
	} else {
		defer rdb.Close()
		throttle = redisdb.NewLoginThrottle(rdb, cfg.LoginWindow, cfg.LoginMaxAttempts)
		readiness["redis"] = redisPinger{client: rdb}
	}

	e := api.NewRouter(api.Dependencies{
		Directory:   upstream,
		Catalog:     upstream,
		Throttle:    throttle,
		TokenSecret: secret,
		Readiness:   readiness,
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.StorefrontPort).Msg("starting storefront gateway")
		if err := e.Start(":" + cfg.StorefrontPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
