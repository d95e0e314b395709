package routers

import (
	"doctorportal-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *appointments.AppointmentController) {
	router.Get("/appointmentOptions", appointmentController.GetAppointmentOptions)
	router.Get("/appointmentSpecialty", appointmentController.GetAppointmentSpecialties)
}
