package responses

// CreateBooking reports either the insert acknowledgement or, for a
// duplicate (email, date, treatment) triple, a soft conflict. Conflicts are
// a 200 with acknowledged=false, never an error status.
type CreateBooking struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}
