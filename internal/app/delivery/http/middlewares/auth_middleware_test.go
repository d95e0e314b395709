package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctorportal-service/internal/app/config"
	"doctorportal-service/internal/app/models"
	"doctorportal-service/internal/pkg/constvars"
	"doctorportal-service/internal/pkg/dto/responses"
	"doctorportal-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubUserRepository struct {
	users map[string]*models.User
}

func (s *stubUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users[email], nil
}

func (s *stubUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	return "", nil
}

func (s *stubUserRepository) UpsertAdminRoleByID(ctx context.Context, userID string) (*responses.UpdateResult, error) {
	return nil, nil
}

const testSecret = "test-access-token-secret"

func newTestMiddlewares(users map[string]*models.User) *Middlewares {
	return &Middlewares{
		Log:            zap.NewNop(),
		UserRepository: &stubUserRepository{users: users},
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: testSecret, ExpTimeInHour: 1},
		},
	}
}

func TestAuthenticate(t *testing.T) {
	middlewares := newTestMiddlewares(nil)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claimEmail, ok := r.Context().Value(constvars.CONTEXT_CLAIM_EMAIL_KEY).(string)
		assert.True(t, ok, "claim email should be set in context")
		assert.Equal(t, "patient@example.com", claimEmail)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bookings", nil)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "no Authorization header is the one 401 case")
	})

	t.Run("Invalid Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not.a.token")

		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "a bad token is 403, not 401")
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := utils.GenerateAccessJWT("patient@example.com", "another-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := utils.GenerateAccessJWT("patient@example.com", testSecret, -1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Valid Token Passes Claim Through", func(t *testing.T) {
		token, err := utils.GenerateAccessJWT("patient@example.com", testSecret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	middlewares := newTestMiddlewares(map[string]*models.User{
		"boss@example.com":    {Email: "boss@example.com", Role: "admin"},
		"patient@example.com": {Email: "patient@example.com"},
	})

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serveWithClaim := func(claimEmail string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/users", nil)
		ctx := context.WithValue(req.Context(), constvars.CONTEXT_CLAIM_EMAIL_KEY, claimEmail)

		rr := httptest.NewRecorder()
		middlewares.RequireAdmin(okHandler).ServeHTTP(rr, req.WithContext(ctx))
		return rr
	}

	t.Run("Admin Claim Allowed", func(t *testing.T) {
		rr := serveWithClaim("boss@example.com")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Non Admin Claim Forbidden", func(t *testing.T) {
		rr := serveWithClaim("patient@example.com")
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Unknown Claim Forbidden", func(t *testing.T) {
		rr := serveWithClaim("stranger@example.com")
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("No Claim In Context Forbidden", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users", nil)

		rr := httptest.NewRecorder()
		middlewares.RequireAdmin(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
