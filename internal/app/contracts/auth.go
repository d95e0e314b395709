package contracts

import (
	"context"

	"doctorportal-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	// IssueToken refuses issuance when the email has no user record.
	IssueToken(ctx context.Context, email string) (*responses.AccessToken, error)
}
