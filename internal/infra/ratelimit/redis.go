package ratelimit

import (
	"context"
	"strconv"
	"time"

	"casegate/internal/pkg/config"
	"casegate/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "rate_limit:"

// RedisLimiter is a sliding-window log shared by every instance.
type RedisLimiter struct {
	client *redis.Client
	window time.Duration
	max    int
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, cfg config.RateLimitConfig) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		window: cfg.Window,
		max:    cfg.Max,
		now:    time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := redisKeyPrefix + key
	now := l.now()
	windowStart := now.Add(-l.window).UnixMilli()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	card := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixMilli()), Member: uuid.NewString()})
	pipe.Expire(ctx, redisKey, l.window*2)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, errs.Wrap(err, "redis pipeline error")
	}

	// card counts hits before this one was added.
	return card.Val() < int64(l.max), nil
}
