package dto

// Request DTOs

// CreateReceptionistRequest carries Salary as a pointer so a missing salary is
// rejected instead of defaulting to zero. The salary range is registered from config.
type CreateReceptionistRequest struct {
	Name   string   `json:"name" validate:"required,notblank,max=100"`
	Shift  string   `json:"shift" validate:"required,notblank,max=10"`
	Salary *float64 `json:"salary" validate:"required"`
}

// Response DTOs

type ReceptionistResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Shift  string  `json:"shift"`
	Salary float64 `json:"salary"`
}
