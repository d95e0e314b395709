package contracts

import "context"

// BookingConfirmationMessage is the payload handed to the out-of-band mailer.
type BookingConfirmationMessage struct {
	Email           string `json:"email"`
	Patient         string `json:"patient,omitempty"`
	Treatment       string `json:"treatment"`
	AppointmentDate string `json:"appointmentDate"`
	Slot            string `json:"slot"`
}

type MailQueueService interface {
	EnqueueBookingConfirmation(ctx context.Context, message *BookingConfirmationMessage) error
}
