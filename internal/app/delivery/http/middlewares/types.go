package middlewares

import (
	"doctorportal-service/internal/app/config"
	"doctorportal-service/internal/app/contracts"
	"doctorportal-service/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	UserRepository contracts.UserRepository
	BookingLimiter *ratelimiter.BookingRateLimiter
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	userRepository contracts.UserRepository,
	bookingLimiter *ratelimiter.BookingRateLimiter,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		UserRepository: userRepository,
		BookingLimiter: bookingLimiter,
		InternalConfig: internalConfig,
	}
}
