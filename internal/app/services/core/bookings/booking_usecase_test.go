package bookings

import (
	"context"
	"testing"

	"doctorportal-service/internal/app/contracts"
	"doctorportal-service/internal/app/models"
	"doctorportal-service/internal/pkg/dto/requests"
	"doctorportal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubBookingRepository struct {
	existing []models.Booking
	inserted []*models.Booking
}

func (s *stubBookingRepository) FindByAppointmentDate(ctx context.Context, date string) ([]models.Booking, error) {
	return s.existing, nil
}

func (s *stubBookingRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	var result []models.Booking
	for _, booking := range s.existing {
		if booking.Email == email {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (s *stubBookingRepository) FindByOwnerAndTreatmentOnDate(ctx context.Context, date, email, treatment string) ([]models.Booking, error) {
	var result []models.Booking
	for _, booking := range s.existing {
		if booking.AppointmentDate == date && booking.Email == email && booking.Treatment == treatment {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (s *stubBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	s.inserted = append(s.inserted, booking)
	return "64a0f0c2e4b0a1b2c3d4e5f6", nil
}

type stubMailQueue struct {
	messages []*contracts.BookingConfirmationMessage
	err      error
}

func (s *stubMailQueue) EnqueueBookingConfirmation(ctx context.Context, message *contracts.BookingConfirmationMessage) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, message)
	return nil
}

func TestCreateBooking(t *testing.T) {
	request := func() *requests.CreateBooking {
		return &requests.CreateBooking{
			AppointmentDate: "May 15, 2023",
			Treatment:       "Teeth Cleaning",
			Slot:            "09.00 AM - 10.00 AM",
			Email:           "patient@example.com",
			Patient:         "Jane Roe",
			Phone:           "0123456789",
		}
	}

	t.Run("New Booking Acknowledged", func(t *testing.T) {
		repo := &stubBookingRepository{}
		mail := &stubMailQueue{}
		usecase := NewBookingUsecase(zap.NewNop(), repo, mail)

		result, err := usecase.CreateBooking(context.Background(), request())

		assert.NoError(t, err)
		assert.True(t, result.Acknowledged)
		assert.NotEmpty(t, result.InsertedID)
		assert.Len(t, repo.inserted, 1, "booking should be persisted")
		assert.Len(t, mail.messages, 1, "confirmation should be enqueued")
	})

	t.Run("Duplicate Same Day Treatment Rejected", func(t *testing.T) {
		repo := &stubBookingRepository{
			existing: []models.Booking{
				{AppointmentDate: "May 15, 2023", Email: "patient@example.com", Treatment: "Teeth Cleaning", Slot: "08.00 AM - 09.00 AM"},
			},
		}
		usecase := NewBookingUsecase(zap.NewNop(), repo, &stubMailQueue{})

		result, err := usecase.CreateBooking(context.Background(), request())

		assert.NoError(t, err, "a duplicate is a polite refusal, not an error")
		assert.False(t, result.Acknowledged)
		assert.Equal(t, "You already have a booking on May 15, 2023", result.Message)
		assert.Empty(t, repo.inserted, "store must be untouched on a duplicate")
	})

	t.Run("Duplicate Check Ignores Slot", func(t *testing.T) {
		repo := &stubBookingRepository{
			existing: []models.Booking{
				{AppointmentDate: "May 15, 2023", Email: "patient@example.com", Treatment: "Teeth Cleaning", Slot: "10.00 AM - 11.00 AM"},
			},
		}
		usecase := NewBookingUsecase(zap.NewNop(), repo, &stubMailQueue{})

		result, err := usecase.CreateBooking(context.Background(), request())

		assert.NoError(t, err)
		assert.False(t, result.Acknowledged, "a second slot for the same treatment on the same day is still a duplicate")
	})

	t.Run("Different Treatment Same Day Allowed", func(t *testing.T) {
		repo := &stubBookingRepository{
			existing: []models.Booking{
				{AppointmentDate: "May 15, 2023", Email: "patient@example.com", Treatment: "Cavity Protection", Slot: "09.00 AM - 10.00 AM"},
			},
		}
		usecase := NewBookingUsecase(zap.NewNop(), repo, &stubMailQueue{})

		result, err := usecase.CreateBooking(context.Background(), request())

		assert.NoError(t, err)
		assert.True(t, result.Acknowledged)
	})

	t.Run("Mail Failure Does Not Undo Booking", func(t *testing.T) {
		repo := &stubBookingRepository{}
		mail := &stubMailQueue{err: exceptions.ErrMailQueuePublish(nil)}
		usecase := NewBookingUsecase(zap.NewNop(), repo, mail)

		result, err := usecase.CreateBooking(context.Background(), request())

		assert.NoError(t, err)
		assert.True(t, result.Acknowledged, "the booking stands even when the mailer is down")
		assert.Len(t, repo.inserted, 1)
	})
}

func TestGetBookingsByEmail(t *testing.T) {
	repo := &stubBookingRepository{
		existing: []models.Booking{
			{AppointmentDate: "May 15, 2023", Email: "patient@example.com", Treatment: "Teeth Cleaning"},
			{AppointmentDate: "May 16, 2023", Email: "other@example.com", Treatment: "Teeth Cleaning"},
		},
	}
	usecase := NewBookingUsecase(zap.NewNop(), repo, &stubMailQueue{})

	t.Run("Owner Sees Own Bookings", func(t *testing.T) {
		result, err := usecase.GetBookingsByEmail(context.Background(), "patient@example.com", "patient@example.com")

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "patient@example.com", result[0].Email)
	})

	t.Run("Claim Mismatch Forbidden", func(t *testing.T) {
		_, err := usecase.GetBookingsByEmail(context.Background(), "other@example.com", "patient@example.com")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 403, customErr.StatusCode, "a valid token for another mailbox is still forbidden")
	})
}
