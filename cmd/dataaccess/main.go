// The dataaccess service is the storage-facing layer behind both gateways.
// It owns MongoDB, validates credentials, mints daily tokens, and serves the
// durable catalog and account records over plain HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/minimart/storefront/internal/api/handler"
	"github.com/minimart/storefront/internal/dataapi"
	mongodb "github.com/minimart/storefront/internal/infrastructure/db/mongo"
	"github.com/minimart/storefront/internal/pkg/config"
	"github.com/minimart/storefront/pkg/logger"
)

// mongoPinger adapts the driver client to the readiness probe.
type mongoPinger struct {
	client *mongodriver.Client
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Service: "dataaccess",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	secret, fallback := cfg.ResolveTokenSecret()
	if fallback {
		log.Warn().Msg("TOKEN_SECRET is not set, using the development fallback secret")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	items := mongodb.NewItemRepository(db)
	users := mongodb.NewUserRepository(db)

	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}
	if err := mongodb.Seed(ctx, items, users, log); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	e := dataapi.NewRouter(dataapi.Dependencies{
		Items:       items,
		Users:       users,
		TokenSecret: secret,
		Readiness:   map[string]handler.UpstreamPinger{"mongo": mongoPinger{client: client}},
		Logger:      log,
	})

	go func() {
		log.Info().Str("port", cfg.DataAccessPort).Msg("starting data-access service")
		if err := e.Start(":" + cfg.DataAccessPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
