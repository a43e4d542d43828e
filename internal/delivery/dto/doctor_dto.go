package dto

// Request DTOs

type CreateDoctorRequest struct {
	Name      string `json:"name" validate:"required,notblank"`
	Specialty string `json:"specialty" validate:"required,notblank,max=100"`
}

// Response DTOs

type DoctorResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}
