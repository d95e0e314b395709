package requests

import "doctorportal-service/internal/app/models"

type CreateUser struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email" validate:"required,email"`
}

func (r *CreateUser) ToModel() *models.User {
	return &models.User{
		Name:  r.Name,
		Email: r.Email,
	}
}
