package middlewares

import (
	"context"
	"net/http"
	"time"

	"doctorportal-service/internal/pkg/constvars"
	"doctorportal-service/internal/pkg/exceptions"
	"doctorportal-service/internal/pkg/utils"
)

// RequireAdmin looks the verified claim email up in the user store and
// rejects anyone whose role is not exactly "admin". It only makes sense
// after Authenticate has run; on its own there is no trusted identity to
// check.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claimEmail, ok := r.Context().Value(constvars.CONTEXT_CLAIM_EMAIL_KEY).(string)
		if !ok || claimEmail == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrForbiddenNotAdmin(nil))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		user, err := m.UserRepository.FindByEmail(ctx, claimEmail)
		if err != nil {
			if err == context.DeadlineExceeded {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		if !user.IsAdmin() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrForbiddenNotAdmin(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
