package contracts

import (
	"context"

	"doctorportal-service/internal/app/models"
	"doctorportal-service/internal/pkg/dto/requests"
	"doctorportal-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	DeleteByID(ctx context.Context, doctorID string) (*responses.DeleteResult, error)
}

type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.InsertResult, error)
	DeleteDoctor(ctx context.Context, doctorID string) (*responses.DeleteResult, error)
}
