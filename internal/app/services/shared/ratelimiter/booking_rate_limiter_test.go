package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"doctorportal-service/internal/app/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubRedisRepository struct {
	values map[string]string
	err    error
}

func (s *stubRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.values[key] = fmt.Sprintf("%v", value)
	return nil
}

func (s *stubRedisRepository) Get(ctx context.Context, key string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.values[key], nil
}

func (s *stubRedisRepository) Delete(ctx context.Context, key string) error {
	delete(s.values, key)
	return nil
}

func newTestLimiter(redis *stubRedisRepository, limit int) *BookingRateLimiter {
	return NewBookingRateLimiter(redis, zap.NewNop(), &config.InternalConfig{
		App: config.App{
			BookingRateLimit:           limit,
			BookingRateWindowInSeconds: 60,
		},
	})
}

func TestBookingRateLimiter(t *testing.T) {
	t.Run("Allows Up To Limit", func(t *testing.T) {
		limiter := newTestLimiter(&stubRedisRepository{values: map[string]string{}}, 3)

		for i := 0; i < 3; i++ {
			assert.True(t, limiter.Allow(context.Background(), "10.0.0.1"), "attempt %d should pass", i+1)
		}
		assert.False(t, limiter.Allow(context.Background(), "10.0.0.1"), "attempt past the limit should be refused")
	})

	t.Run("Clients Counted Separately", func(t *testing.T) {
		limiter := newTestLimiter(&stubRedisRepository{values: map[string]string{}}, 1)

		assert.True(t, limiter.Allow(context.Background(), "10.0.0.1"))
		assert.False(t, limiter.Allow(context.Background(), "10.0.0.1"))
		assert.True(t, limiter.Allow(context.Background(), "10.0.0.2"), "another client has its own budget")
	})

	t.Run("Zero Limit Disables", func(t *testing.T) {
		limiter := newTestLimiter(&stubRedisRepository{values: map[string]string{}}, 0)

		for i := 0; i < 10; i++ {
			assert.True(t, limiter.Allow(context.Background(), "10.0.0.1"))
		}
	})

	t.Run("Redis Failure Fails Open", func(t *testing.T) {
		limiter := newTestLimiter(&stubRedisRepository{err: errors.New("connection refused")}, 1)

		assert.True(t, limiter.Allow(context.Background(), "10.0.0.1"))
		assert.True(t, limiter.Allow(context.Background(), "10.0.0.1"), "bookings must not depend on redis being up")
	})

	t.Run("Empty Client Key Allowed", func(t *testing.T) {
		limiter := newTestLimiter(&stubRedisRepository{values: map[string]string{}}, 1)

		assert.True(t, limiter.Allow(context.Background(), ""))
		assert.True(t, limiter.Allow(context.Background(), ""))
	})
}
