package redis

import (
	"context"
	"time"

	"oficina-criativa/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	loginRateLimitPrefix = "login_rate:"
	loginRateLimitWindow = time.Hour
	loginRateLimitMax    = 5
)

// LoginRateLimiter caps magic-link requests per email with a fixed
// window counter.
type LoginRateLimiter struct {
	client *redis.Client
}

func NewLoginRateLimiter(client *redis.Client) *LoginRateLimiter {
	return &LoginRateLimiter{client: client}
}

func (l *LoginRateLimiter) Allow(ctx context.Context, email string) (bool, error) {
	key := loginRateLimitPrefix + email

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to increment rate counter")
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, loginRateLimitWindow).Err(); err != nil {
			return false, errs.Wrap(err, "failed to set rate window")
		}
	}

	return count <= loginRateLimitMax, nil
}
