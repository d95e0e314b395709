package routers

import (
	"doctorportal-service/internal/app/delivery/http/middlewares"
	"doctorportal-service/internal/app/services/core/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.With(middlewares.Authenticate).Get("/bookings", bookingController.GetBookings)
	router.With(middlewares.BookingRateLimit).Post("/bookings", bookingController.CreateBooking)
}
