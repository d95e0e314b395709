package contracts

import (
	"context"

	"doctorportal-service/internal/app/models"
	"doctorportal-service/internal/pkg/dto/requests"
	"doctorportal-service/internal/pkg/dto/responses"
)

type BookingRepository interface {
	FindByAppointmentDate(ctx context.Context, date string) ([]models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindByOwnerAndTreatmentOnDate(ctx context.Context, date, email, treatment string) ([]models.Booking, error)
	CreateBooking(ctx context.Context, booking *models.Booking) (string, error)
}

type BookingUsecase interface {
	GetBookingsByEmail(ctx context.Context, email, claimEmail string) ([]models.Booking, error)
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBooking, error)
}
