package contracts

import (
	"context"

	"doctorportal-service/internal/app/models"
	"doctorportal-service/internal/pkg/dto/responses"
)

type AppointmentOptionRepository interface {
	FindAll(ctx context.Context) ([]models.AppointmentOption, error)
	FindAllNames(ctx context.Context) ([]responses.Specialty, error)
}

type AppointmentUsecase interface {
	GetOptionsWithAvailability(ctx context.Context, date string) ([]models.AppointmentOption, error)
	GetSpecialties(ctx context.Context) ([]responses.Specialty, error)
}
