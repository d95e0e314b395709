package models

type User struct {
	ID    string `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Email string `json:"email" bson:"email"`
	Role  string `json:"role,omitempty" bson:"role,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}
