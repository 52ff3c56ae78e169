package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// devFallbackSecret is the token secret used when TOKEN_SECRET is unset.
// Acceptable for a mock/test system; services log a warning when it is in
// effect so misconfiguration is never silent.
const devFallbackSecret = "minimart-dev-secret"

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	StorefrontPort string `env:"STOREFRONT_PORT,  default=8080"`
	AdminPort      string `env:"ADMIN_PORT,       default=8081"`
	DataAccessPort string `env:"DATA_ACCESS_PORT, default=8082"`

	// TokenSecret is the shared secret all trust boundaries derive and verify
	// tokens with. Empty means the development fallback is used.
	TokenSecret string `env:"TOKEN_SECRET"`

	DataAccessURL   string        `env:"DATA_ACCESS_URL,  default=http://localhost:8082"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT, default=5s"`

	LoginWindow      time.Duration `env:"LOGIN_WINDOW,       default=1m"`
	LoginMaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=10"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=minimart"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// ResolveTokenSecret returns the effective shared secret and whether the
// development fallback is in use. Callers must log a warning when it is.
func (c *Config) ResolveTokenSecret() (secret string, fallback bool) {
	if c.TokenSecret == "" {
		return devFallbackSecret, true
	}
	return c.TokenSecret, false
}
