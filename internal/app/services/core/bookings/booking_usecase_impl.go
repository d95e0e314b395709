package bookings

import (
	"context"
	"fmt"

	"doctorportal-service/internal/app/contracts"
	"doctorportal-service/internal/app/models"
	"doctorportal-service/internal/pkg/constvars"
	"doctorportal-service/internal/pkg/dto/requests"
	"doctorportal-service/internal/pkg/dto/responses"
	"doctorportal-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	Log               *zap.Logger
	BookingRepository contracts.BookingRepository
	MailQueueService  contracts.MailQueueService
}

func NewBookingUsecase(
	logger *zap.Logger,
	bookingMongoRepository contracts.BookingRepository,
	mailQueueService contracts.MailQueueService,
) contracts.BookingUsecase {
	return &bookingUsecase{
		Log:               logger,
		BookingRepository: bookingMongoRepository,
		MailQueueService:  mailQueueService,
	}
}

// GetBookingsByEmail lists the caller's own bookings. The requested email
// must equal the verified token claim; a valid token for someone else's
// mailbox is still forbidden.
func (uc *bookingUsecase) GetBookingsByEmail(ctx context.Context, email, claimEmail string) ([]models.Booking, error) {
	if email != claimEmail {
		return nil, exceptions.ErrForbiddenEmailMismatch(nil)
	}
	return uc.BookingRepository.FindByEmail(ctx, email)
}

// CreateBooking rejects an exact duplicate of (date, email, treatment) and
// otherwise inserts unconditionally. Two different patients may take the
// same slot; the store has no uniqueness constraint and the check-then-insert
// gap is an accepted property of the portal.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBooking, error) {
	alreadyBooked, err := uc.BookingRepository.FindByOwnerAndTreatmentOnDate(
		ctx,
		request.AppointmentDate,
		request.Email,
		request.Treatment,
	)
	if err != nil {
		return nil, err
	}

	if len(alreadyBooked) > 0 {
		return &responses.CreateBooking{
			Acknowledged: false,
			Message:      fmt.Sprintf(constvars.BookingConflictMessageFormat, request.AppointmentDate),
		}, nil
	}

	bookingID, err := uc.BookingRepository.CreateBooking(ctx, request.ToModel())
	if err != nil {
		return nil, err
	}

	// Confirmation mail is best effort; the booking stands either way.
	err = uc.MailQueueService.EnqueueBookingConfirmation(ctx, &contracts.BookingConfirmationMessage{
		Email:           request.Email,
		Patient:         request.Patient,
		Treatment:       request.Treatment,
		AppointmentDate: request.AppointmentDate,
		Slot:            request.Slot,
	})
	if err != nil {
		uc.Log.Warn("failed to enqueue booking confirmation", zap.Error(err), zap.String("booking_id", bookingID))
	}

	return &responses.CreateBooking{
		Acknowledged: true,
		InsertedID:   bookingID,
	}, nil
}
