package responses

// Specialty is the name-only projection of an appointment option, used for
// the treatment-selection dropdown.
type Specialty struct {
	ID   string `json:"_id,omitempty" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
}
