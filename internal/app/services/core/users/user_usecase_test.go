package users

import (
	"context"
	"testing"

	"doctorportal-service/internal/app/models"
	"doctorportal-service/internal/pkg/dto/requests"
	"doctorportal-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
)

type stubUserRepository struct {
	users    map[string]*models.User
	upserted []string
}

func (s *stubUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var all []models.User
	for _, user := range s.users {
		all = append(all, *user)
	}
	return all, nil
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users[email], nil
}

func (s *stubUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	return "64a0f0c2e4b0a1b2c3d4e5f6", nil
}

func (s *stubUserRepository) UpsertAdminRoleByID(ctx context.Context, userID string) (*responses.UpdateResult, error) {
	s.upserted = append(s.upserted, userID)
	return &responses.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestIsAdmin(t *testing.T) {
	repo := &stubUserRepository{users: map[string]*models.User{
		"boss@example.com":    {Email: "boss@example.com", Role: "admin"},
		"patient@example.com": {Email: "patient@example.com"},
	}}
	usecase := NewUserUsecase(repo)

	t.Run("Admin User", func(t *testing.T) {
		status, err := usecase.IsAdmin(context.Background(), "boss@example.com")

		assert.NoError(t, err)
		assert.True(t, status.IsAdmin)
	})

	t.Run("Regular User", func(t *testing.T) {
		status, err := usecase.IsAdmin(context.Background(), "patient@example.com")

		assert.NoError(t, err)
		assert.False(t, status.IsAdmin)
	})

	t.Run("Unknown Email Is Not An Error", func(t *testing.T) {
		status, err := usecase.IsAdmin(context.Background(), "stranger@example.com")

		assert.NoError(t, err, "the admin check is a lookup, not a gate")
		assert.False(t, status.IsAdmin)
	})
}

func TestPromoteToAdmin(t *testing.T) {
	repo := &stubUserRepository{users: map[string]*models.User{}}
	usecase := NewUserUsecase(repo)

	result, err := usecase.PromoteToAdmin(context.Background(), "64a0f0c2e4b0a1b2c3d4e5f6")

	assert.NoError(t, err)
	assert.True(t, result.Acknowledged)
	assert.Equal(t, []string{"64a0f0c2e4b0a1b2c3d4e5f6"}, repo.upserted)
}

func TestCreateUser(t *testing.T) {
	usecase := NewUserUsecase(&stubUserRepository{users: map[string]*models.User{}})

	result, err := usecase.CreateUser(context.Background(), &requests.CreateUser{
		Name:  "Jane Roe",
		Email: "patient@example.com",
	})

	assert.NoError(t, err)
	assert.True(t, result.Acknowledged)
	assert.Equal(t, "64a0f0c2e4b0a1b2c3d4e5f6", result.InsertedID)
}
