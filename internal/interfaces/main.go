package interfaces

import (
	"context"

	"github.com/go-redis/redis_rate/v10"
)

type Limiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) error
}

// NoopLimiter allows everything. Used when no redis is configured.
type NoopLimiter struct{}

func (NoopLimiter) Allow(context.Context, string, redis_rate.Limit) error {
	return nil
}
