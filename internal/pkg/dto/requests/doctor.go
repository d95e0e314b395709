package requests

import "doctorportal-service/internal/app/models"

type CreateDoctor struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Specialty string `json:"specialty" validate:"required"`
	// Image is an optional base64 data URI; the decoded bytes and extension
	// are filled in by the controller before the usecase uploads them.
	Image          string `json:"image,omitempty"`
	ImageData      []byte `json:"-"`
	ImageExtension string `json:"-"`
}

func (r *CreateDoctor) ToModel() *models.Doctor {
	return &models.Doctor{
		Name:      r.Name,
		Email:     r.Email,
		Specialty: r.Specialty,
	}
}
