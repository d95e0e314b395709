package models

// AppointmentOption is a treatment with its full slot pool for a day.
// Options are defined out of band by an administrator; the service only ever
// reads them and filters the slot list per query.
type AppointmentOption struct {
	ID    string   `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string   `json:"name" bson:"name"`
	Slots []string `json:"slots" bson:"slots"`
}
