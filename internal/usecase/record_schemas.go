package usecase

import (
	"clinic-records/config"
	"clinic-records/internal/converter"
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
)

type (
	DoctorUsecase       = RecordUsecase[dto.CreateDoctorRequest, dto.DoctorResponse]
	PatientUsecase      = RecordUsecase[dto.CreatePatientRequest, dto.PatientResponse]
	ReceptionistUsecase = RecordUsecase[dto.CreateReceptionistRequest, dto.ReceptionistResponse]
)

var DoctorSchema = RecordSchema[entity.Doctor, dto.CreateDoctorRequest, dto.DoctorResponse]{
	Resource:    "doctors",
	Entity:      "doctor",
	FromRequest: converter.DoctorFromRequest,
	ToResponse:  converter.DoctorToResponse,
	IDOf:        func(d *entity.Doctor) int64 { return d.ID },
}

var PatientSchema = RecordSchema[entity.Patient, dto.CreatePatientRequest, dto.PatientResponse]{
	Resource:    "patients",
	Entity:      "patient",
	FromRequest: converter.PatientFromRequest,
	ToResponse:  converter.PatientToResponse,
	IDOf:        func(p *entity.Patient) int64 { return p.ID },
}

var ReceptionistSchema = RecordSchema[entity.Receptionist, dto.CreateReceptionistRequest, dto.ReceptionistResponse]{
	Resource:    "receptionists",
	Entity:      "receptionist",
	FromRequest: converter.ReceptionistFromRequest,
	ToResponse:  converter.ReceptionistToResponse,
	IDOf:        func(r *entity.Receptionist) int64 { return r.ID },
}

// rangeRegistrar is satisfied by *validator.CustomValidator.
type rangeRegistrar interface {
	RegisterRange(structType interface{}, field string, min, max float64)
}

// RegisterValidationBounds installs the configured numeric ranges for create requests.
func RegisterValidationBounds(v rangeRegistrar, cfg config.ValidationConfig) {
	v.RegisterRange(dto.CreatePatientRequest{}, "Age", float64(cfg.PatientAgeMin), float64(cfg.PatientAgeMax))
	v.RegisterRange(dto.CreateReceptionistRequest{}, "Salary", cfg.ReceptionistSalaryMin, cfg.ReceptionistSalaryMax)
}
