package ratelimit

import (
	"context"
	"sync"
	"time"

	"casegate/internal/pkg/config"

	"golang.org/x/time/rate"
)

// sweepThreshold is the number of tracked keys above which idle ones are dropped.
const sweepThreshold = 10_000

// MemoryLimiter keeps one token bucket per key. Counts are per process, so it
// only fits single-instance deployments.
type MemoryLimiter struct {
	mu       sync.Mutex
	limiters map[string]*visitor
	limit    rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewMemoryLimiter allows cfg.Max hits in a burst, refilled evenly over cfg.Window.
func NewMemoryLimiter(cfg config.RateLimitConfig) *MemoryLimiter {
	burst := cfg.Max
	if burst <= 0 {
		burst = 1
	}
	return &MemoryLimiter{
		limiters: make(map[string]*visitor),
		limit:    rate.Every(cfg.Window / time.Duration(burst)),
		burst:    burst,
		idle:     cfg.Window,
		now:      time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= sweepThreshold {
			l.sweep(now)
		}
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1), nil
}

func (l *MemoryLimiter) sweep(now time.Time) {
	for key, v := range l.limiters {
		if now.Sub(v.lastSeen) > l.idle {
			delete(l.limiters, key)
		}
	}
}
