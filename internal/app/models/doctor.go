package models

type Doctor struct {
	ID        string `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Specialty string `json:"specialty" bson:"specialty"`
	Image     string `json:"image,omitempty" bson:"image,omitempty"`
}
