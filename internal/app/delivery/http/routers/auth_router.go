package routers

import (
	"doctorportal-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, authController *auth.AuthController) {
	router.Get("/jwt", authController.IssueToken)
}
