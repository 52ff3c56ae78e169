package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultWindow      = time.Minute
	defaultMaxAttempts = 10
)

// LoginThrottle bounds login attempts per username using a Redis counter
// with a rolling TTL window. Key format: login_attempts:<username>
type LoginThrottle struct {
	client      *redis.Client
	window      time.Duration
	maxAttempts int64
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
// Non-positive window or maxAttempts fall back to the defaults.
func NewLoginThrottle(client *redis.Client, window time.Duration, maxAttempts int) *LoginThrottle {
	if window <= 0 {
		window = defaultWindow
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &LoginThrottle{client: client, window: window, maxAttempts: int64(maxAttempts)}
}

// Allow counts this attempt and reports whether it is within the window
// budget. The TTL is set on the first attempt of each window.
func (t *LoginThrottle) Allow(ctx context.Context, username string) (bool, error) {
	key := t.key(username)

	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("login throttle: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return false, fmt.Errorf("login throttle expire: %w", err)
		}
	}
	return n <= t.maxAttempts, nil
}

func (t *LoginThrottle) key(username string) string {
	return "login_attempts:" + username
}
