package ratelimit

import (
	"context"
	"fmt"

	"casegate/internal/pkg/config"
	"casegate/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

var (
	_ commands.RateLimiter = (*MemoryLimiter)(nil)
	_ commands.RateLimiter = (*RedisLimiter)(nil)
)

// New picks the limiter for cfg.Driver. client is only used by the redis driver.
func New(cfg config.RateLimitConfig, client *redis.Client) (Limiter, error) {
	switch cfg.Driver {
	case DriverMemory, "":
		return NewMemoryLimiter(cfg), nil
	case DriverRedis:
		if client == nil {
			return nil, fmt.Errorf("redis rate limiter requires a redis client")
		}
		return NewRedisLimiter(client, cfg), nil
	default:
		return nil, fmt.Errorf("unknown rate limit driver %q", cfg.Driver)
	}
}
