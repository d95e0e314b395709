package routers

import (
	"doctorportal-service/internal/app/delivery/http/middlewares"
	"doctorportal-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/users", userController.GetAllUsers)
	router.Post("/users", userController.CreateUser)
	router.Get("/users/admin/{email}", userController.GetAdminStatus)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/users/admin/{id}", userController.PromoteToAdmin)
}
