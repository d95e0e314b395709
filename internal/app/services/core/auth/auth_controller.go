package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"doctorportal-service/internal/app/contracts"
	"doctorportal-service/internal/pkg/constvars"
	"doctorportal-service/internal/pkg/dto/responses"
	"doctorportal-service/internal/pkg/exceptions"
	"doctorportal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

// IssueToken answers an unknown email with 403 and an empty accessToken
// field, which is the shape the portal's clients check for.
func (ctrl *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AuthUsecase.IssueToken(ctx, email)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusForbidden {
			utils.BuildJSONResponse(w, constvars.StatusForbidden, responses.AccessToken{AccessToken: ""})
			return
		}
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
