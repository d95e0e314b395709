package routers

import (
	"doctorportal-service/internal/app/delivery/http/middlewares"
	"doctorportal-service/internal/app/services/core/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.Route("/doctors", func(r chi.Router) {
		r.Use(middlewares.Authenticate, middlewares.RequireAdmin)
		r.Get("/", doctorController.GetAllDoctors)
		r.Post("/", doctorController.CreateDoctor)
		r.Delete("/{id}", doctorController.DeleteDoctor)
	})
}
