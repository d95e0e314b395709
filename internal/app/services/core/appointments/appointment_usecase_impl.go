package appointments

import (
	"context"

	"doctorportal-service/internal/app/contracts"
	"doctorportal-service/internal/app/models"
	"doctorportal-service/internal/pkg/dto/responses"
)

type appointmentUsecase struct {
	AppointmentOptionRepository contracts.AppointmentOptionRepository
	BookingRepository           contracts.BookingRepository
}

func NewAppointmentUsecase(
	appointmentOptionMongoRepository contracts.AppointmentOptionRepository,
	bookingMongoRepository contracts.BookingRepository,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentOptionRepository: appointmentOptionMongoRepository,
		BookingRepository:           bookingMongoRepository,
	}
}

// GetOptionsWithAvailability returns every option with the slots still open
// on the given date. The date is an opaque label matched by exact string
// equality against stored bookings.
func (uc *appointmentUsecase) GetOptionsWithAvailability(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	appointmentOptions, err := uc.AppointmentOptionRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	bookingsOnDate, err := uc.BookingRepository.FindByAppointmentDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return ComputeAvailability(appointmentOptions, bookingsOnDate), nil
}

func (uc *appointmentUsecase) GetSpecialties(ctx context.Context) ([]responses.Specialty, error) {
	return uc.AppointmentOptionRepository.FindAllNames(ctx)
}
