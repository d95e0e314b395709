package models

// Booking is a patient's claim on a (treatment, date, slot). AppointmentDate
// is an opaque date label; the service compares it with exact string equality
// and never parses it.
type Booking struct {
	ID              string `json:"_id,omitempty" bson:"_id,omitempty"`
	AppointmentDate string `json:"appointmentDate" bson:"appointmentDate"`
	Treatment       string `json:"treatment" bson:"treatment"`
	Slot            string `json:"slot" bson:"slot"`
	Email           string `json:"email" bson:"email"`
	Patient         string `json:"patient,omitempty" bson:"patient,omitempty"`
	Phone           string `json:"phone,omitempty" bson:"phone,omitempty"`
}
