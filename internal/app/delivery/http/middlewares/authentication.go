package middlewares

import (
	"context"
	"net/http"
	"strings"

	"doctorportal-service/internal/pkg/constvars"
	"doctorportal-service/internal/pkg/exceptions"
	"doctorportal-service/internal/pkg/utils"
)

// Authenticate verifies the bearer token and stores the email claim in the
// request context. A missing header is 401; a bad or expired token is 403,
// matching the portal's original contract.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)
		claimEmail, err := utils.ParseAccessJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_CLAIM_EMAIL_KEY, claimEmail)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
