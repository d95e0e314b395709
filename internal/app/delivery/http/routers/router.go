package routers

import (
	"net/http"
	"time"

	"doctorportal-service/internal/app/delivery/http/middlewares"
	"doctorportal-service/internal/app/services/core/appointments"
	"doctorportal-service/internal/app/services/core/auth"
	"doctorportal-service/internal/app/services/core/bookings"
	"doctorportal-service/internal/app/services/core/doctors"
	"doctorportal-service/internal/app/services/core/users"
	"doctorportal-service/internal/pkg/constvars"
	"doctorportal-service/internal/pkg/utils"

	"doctorportal-service/internal/app/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *appointments.AppointmentController,
	bookingController *bookings.BookingController,
	authController *auth.AuthController,
	userController *users.UserController,
	doctorController *doctors.DoctorController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildTextResponse(w, constvars.StatusOK, constvars.LivenessMessage)
	})

	attachAppointmentRoutes(router, appointmentController)
	attachBookingRoutes(router, middlewares, bookingController)
	attachAuthRoutes(router, authController)
	attachUserRoutes(router, middlewares, userController)
	attachDoctorRoutes(router, middlewares, doctorController)
}
