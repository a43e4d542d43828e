package converter

import (
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ReceptionistFromRequest converts a CreateReceptionistRequest DTO to a
// Receptionist entity, rounding the salary to cents to match the column.
func ReceptionistFromRequest(req *dto.CreateReceptionistRequest) *entity.Receptionist {
	receptionist := &entity.Receptionist{
		Name:  req.Name,
		Shift: req.Shift,
	}
	if req.Salary != nil {
		receptionist.Salary = decimal.NewFromFloat(*req.Salary).Round(2)
	}
	return receptionist
}

// ReceptionistToResponse converts a Receptionist entity to ReceptionistResponse DTO
func ReceptionistToResponse(receptionist *entity.Receptionist) *dto.ReceptionistResponse {
	if receptionist == nil {
		return nil
	}

	return &dto.ReceptionistResponse{
		ID:     receptionist.ID,
		Name:   receptionist.Name,
		Shift:  receptionist.Shift,
		Salary: receptionist.Salary.InexactFloat64(),
	}
}
