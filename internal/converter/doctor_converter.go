package converter

import (
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
)

// DoctorFromRequest converts a CreateDoctorRequest DTO to a Doctor entity
func DoctorFromRequest(req *dto.CreateDoctorRequest) *entity.Doctor {
	return &entity.Doctor{
		Name:      req.Name,
		Specialty: req.Specialty,
	}
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Specialty: doctor.Specialty,
	}
}
