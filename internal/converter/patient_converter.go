package converter

import (
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
)

// PatientFromRequest converts a CreatePatientRequest DTO to a Patient entity.
// The request must have passed validation (Age set).
func PatientFromRequest(req *dto.CreatePatientRequest) *entity.Patient {
	patient := &entity.Patient{Name: req.Name}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	return patient
}

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:   patient.ID,
		Name: patient.Name,
		Age:  patient.Age,
	}
}
