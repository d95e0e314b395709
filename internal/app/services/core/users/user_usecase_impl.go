package users

import (
	"context"

	"doctorportal-service/internal/app/contracts"
	"doctorportal-service/internal/app/models"
	"doctorportal-service/internal/pkg/dto/requests"
	"doctorportal-service/internal/pkg/dto/responses"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
}

func NewUserUsecase(userMongoRepository contracts.UserRepository) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userMongoRepository,
	}
}

func (uc *userUsecase) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindAll(ctx)
}

func (uc *userUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.InsertResult, error) {
	userID, err := uc.UserRepository.CreateUser(ctx, request.ToModel())
	if err != nil {
		return nil, err
	}
	return &responses.InsertResult{
		Acknowledged: true,
		InsertedID:   userID,
	}, nil
}

// IsAdmin is a public lookup; an unknown email is simply not an admin.
func (uc *userUsecase) IsAdmin(ctx context.Context, email string) (*responses.AdminStatus, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &responses.AdminStatus{IsAdmin: user.IsAdmin()}, nil
}

func (uc *userUsecase) PromoteToAdmin(ctx context.Context, userID string) (*responses.UpdateResult, error) {
	return uc.UserRepository.UpsertAdminRoleByID(ctx, userID)
}
