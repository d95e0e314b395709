package auth

import (
	"context"

	"doctorportal-service/internal/app/config"
	"doctorportal-service/internal/app/contracts"
	"doctorportal-service/internal/pkg/dto/responses"
	"doctorportal-service/internal/pkg/exceptions"
	"doctorportal-service/internal/pkg/utils"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	InternalConfig *config.InternalConfig
}

func NewAuthUsecase(userMongoRepository contracts.UserRepository, internalConfig *config.InternalConfig) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userMongoRepository,
		InternalConfig: internalConfig,
	}
}

// IssueToken signs an access token for a known user. An email with no user
// record is refused; no token is produced.
func (uc *authUsecase) IssueToken(ctx context.Context, email string) (*responses.AccessToken, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUnknownUser(nil)
	}

	token, err := utils.GenerateAccessJWT(email, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.AccessToken{AccessToken: token}, nil
}
