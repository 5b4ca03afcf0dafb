package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter counts login attempts per email inside a sliding window.
type LoginLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

// NewLoginLimiter builds a Redis-backed limiter.
func NewLoginLimiter(client *redis.Client, max int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, max: max, window: window}
}

// Allow records one attempt for the email and reports whether it is within
// the limit. Redis failures allow the attempt; availability of login must
// not depend on the throttle backend.
func (l *LoginLimiter) Allow(ctx context.Context, email string) bool {
	if l == nil || l.client == nil || l.max <= 0 {
		return true
	}

	key := "login_attempts:" + email
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		_ = l.client.Expire(ctx, key, l.window).Err()
	}
	return count <= int64(l.max)
}
