package bootstrap

import (
	"context"

	"casegate/internal/infra/ratelimit"
	"casegate/internal/pkg/config"
	"casegate/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewRateLimiter,
			fx.As(new(commands.RateLimiter)),
		),
	),
)

// NewRedisClient returns nil unless the redis limiter is selected.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	if cfg.RateLimit.Driver != ratelimit.DriverRedis {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RateLimit.RedisAddr,
		Password: cfg.RateLimit.RedisPassword,
		DB:       cfg.RateLimit.RedisDB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func NewRateLimiter(cfg config.Config, client *redis.Client) (ratelimit.Limiter, error) {
	return ratelimit.New(cfg.RateLimit, client)
}
