package requests

import "doctorportal-service/internal/app/models"

type CreateBooking struct {
	AppointmentDate string `json:"appointmentDate" validate:"required"`
	Treatment       string `json:"treatment" validate:"required"`
	Slot            string `json:"slot" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Patient         string `json:"patient,omitempty"`
	Phone           string `json:"phone,omitempty"`
}

func (r *CreateBooking) ToModel() *models.Booking {
	return &models.Booking{
		AppointmentDate: r.AppointmentDate,
		Treatment:       r.Treatment,
		Slot:            r.Slot,
		Email:           r.Email,
		Patient:         r.Patient,
		Phone:           r.Phone,
	}
}
