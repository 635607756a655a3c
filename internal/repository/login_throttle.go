package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle tracks consecutive failed logins per email. It lives in
// the login path only; the request gates never consult it. When Redis is
// unreachable the throttle degrades open so logins keep working.
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, email string) bool
	RecordFailure(ctx context.Context, email string)
	Reset(ctx context.Context, email string)
}

type redisLoginThrottle struct {
	client      *redis.Client
	maxAttempts int
	cooldown    time.Duration
}

// NewLoginThrottle returns a Redis-backed throttle.
func NewLoginThrottle(client *redis.Client, maxAttempts int, cooldown time.Duration) LoginThrottle {
	return &redisLoginThrottle{client: client, maxAttempts: maxAttempts, cooldown: cooldown}
}

func throttleKey(email string) string {
	return fmt.Sprintf("login_failures:%s", email)
}

func (t *redisLoginThrottle) TooManyFailures(ctx context.Context, email string) bool {
	if t.client == nil || t.maxAttempts <= 0 {
		return false
	}
	count, err := t.client.Get(ctx, throttleKey(email)).Int()
	if err != nil {
		return false
	}
	return count >= t.maxAttempts
}

func (t *redisLoginThrottle) RecordFailure(ctx context.Context, email string) {
	if t.client == nil {
		return
	}
	key := throttleKey(email)
	if err := t.client.Incr(ctx, key).Err(); err != nil {
		return
	}
	t.client.Expire(ctx, key, t.cooldown)
}

func (t *redisLoginThrottle) Reset(ctx context.Context, email string) {
	if t.client == nil {
		return
	}
	t.client.Del(ctx, throttleKey(email))
}

// NoopLoginThrottle disables throttling, used when Redis is not configured.
type NoopLoginThrottle struct{}

func (NoopLoginThrottle) TooManyFailures(context.Context, string) bool { return false }
func (NoopLoginThrottle) RecordFailure(context.Context, string)        {}
func (NoopLoginThrottle) Reset(context.Context, string)                {}
