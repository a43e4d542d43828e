package dto

// Request DTOs

// CreatePatientRequest carries Age as a pointer so a missing age is rejected
// instead of defaulting to zero. The age range is registered from config.
type CreatePatientRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
	Age  *int   `json:"age" validate:"required"`
}

// Response DTOs

type PatientResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}
