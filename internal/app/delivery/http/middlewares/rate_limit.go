package middlewares

import (
	"net"
	"net/http"

	"doctorportal-service/internal/pkg/exceptions"
	"doctorportal-service/internal/pkg/utils"
)

// BookingRateLimit throttles booking creation per client IP through the
// redis-backed fixed-window limiter.
func (m *Middlewares) BookingRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.BookingLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		clientIP, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			clientIP = r.RemoteAddr
		}

		if !m.BookingLimiter.Allow(r.Context(), clientIP) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyBookingRequests(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
