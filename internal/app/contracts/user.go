package contracts

import (
	"context"

	"doctorportal-service/internal/app/models"
	"doctorportal-service/internal/pkg/dto/requests"
	"doctorportal-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (string, error)
	UpsertAdminRoleByID(ctx context.Context, userID string) (*responses.UpdateResult, error)
}

type UserUsecase interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.InsertResult, error)
	IsAdmin(ctx context.Context, email string) (*responses.AdminStatus, error)
	PromoteToAdmin(ctx context.Context, userID string) (*responses.UpdateResult, error)
}
