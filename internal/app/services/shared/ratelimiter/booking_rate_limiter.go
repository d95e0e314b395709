package ratelimiter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"doctorportal-service/internal/app/config"
	"doctorportal-service/internal/app/contracts"

	"go.uber.org/zap"
)

// BookingRateLimiter enforces a fixed window of booking-creation attempts per
// client, keyed in redis so the limit holds across replicas. A limit <= 0
// disables it.
type BookingRateLimiter struct {
	redis  contracts.RedisRepository
	log    *zap.Logger
	limit  int
	window time.Duration
}

func NewBookingRateLimiter(redis contracts.RedisRepository, log *zap.Logger, cfg *config.InternalConfig) *BookingRateLimiter {
	return &BookingRateLimiter{
		redis:  redis,
		log:    log,
		limit:  cfg.App.BookingRateLimit,
		window: time.Duration(cfg.App.BookingRateWindowInSeconds) * time.Second,
	}
}

// Allow reports whether the client may attempt another booking in the current
// window. Redis failures fail open so the store stays the only hard
// dependency of the booking path.
func (l *BookingRateLimiter) Allow(ctx context.Context, clientKey string) bool {
	if l.limit <= 0 || clientKey == "" {
		return true
	}

	now := time.Now().UTC()
	windowStart := now.Truncate(l.window)
	key := fmt.Sprintf("BOOKING:LIMIT:%d:%s", windowStart.Unix(), clientKey)

	currentStr, err := l.redis.Get(ctx, key)
	if err != nil {
		l.log.Warn("booking rate limiter read failed, allowing request", zap.Error(err))
		return true
	}

	current := 0
	if currentStr != "" {
		current, _ = strconv.Atoi(currentStr)
	}
	if current >= l.limit {
		return false
	}

	ttl := time.Until(windowStart.Add(l.window))
	if err := l.redis.Set(ctx, key, current+1, ttl); err != nil {
		l.log.Warn("booking rate limiter write failed", zap.Error(err))
	}
	return true
}
