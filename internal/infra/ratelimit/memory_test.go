//go:build unit

package ratelimit

import (
	"context"
	"testing"
	"time"

	"casegate/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryLimiter(max int, window time.Duration) (*MemoryLimiter, *time.Time) {
	l := NewMemoryLimiter(config.RateLimitConfig{Driver: DriverMemory, Max: max, Window: window})
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestMemoryLimiter_BurstThenDeny(t *testing.T) {
	l, _ := newTestMemoryLimiter(3, time.Minute)
	ctx := context.Background()

	for i := range 3 {
		ok, err := l.Allow(ctx, "unlock:a@b.de")
		require.NoError(t, err)
		assert.True(t, ok, "hit %d", i+1)
	}

	ok, err := l.Allow(ctx, "unlock:a@b.de")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l, _ := newTestMemoryLimiter(1, time.Minute)
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "a")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "a")
	assert.False(t, ok)
	ok, _ = l.Allow(ctx, "b")
	assert.True(t, ok)
}

func TestMemoryLimiter_Refills(t *testing.T) {
	l, now := newTestMemoryLimiter(2, time.Minute)
	ctx := context.Background()

	_, _ = l.Allow(ctx, "a")
	_, _ = l.Allow(ctx, "a")
	ok, _ := l.Allow(ctx, "a")
	require.False(t, ok)

	*now = now.Add(30 * time.Second)
	ok, _ = l.Allow(ctx, "a")
	assert.True(t, ok)
}

func TestMemoryLimiter_SweepDropsIdleKeys(t *testing.T) {
	l, now := newTestMemoryLimiter(1, time.Minute)
	l.limiters["stale"] = &visitor{lastSeen: now.Add(-2 * time.Minute)}
	l.limiters["fresh"] = &visitor{lastSeen: *now}

	l.sweep(*now)

	assert.NotContains(t, l.limiters, "stale")
	assert.Contains(t, l.limiters, "fresh")
}

func TestNew(t *testing.T) {
	_, err := New(config.RateLimitConfig{Driver: "redis"}, nil)
	assert.Error(t, err)

	_, err = New(config.RateLimitConfig{Driver: "carrier-pigeon"}, nil)
	assert.Error(t, err)

	l, err := New(config.RateLimitConfig{Driver: "memory", Max: 1, Window: time.Second}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryLimiter{}, l)
}
