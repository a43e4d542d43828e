package client

import (
	"errors"
	"strconv"
	"strings"

	"clinic-records/internal/delivery/dto"
)

// FormError is a client-side rejection of a form before any request is sent.
type FormError struct {
	Message string
}

func (e *FormError) Error() string {
	return e.Message
}

var errMissingFields = &FormError{Message: "Please fill in all required fields"}

// Resource describes one record type as the client sees it.
type Resource[T any, Req any] struct {
	// Path is the API collection path, e.g. "/api/doctors".
	Path string
	// Label is the plural display name, e.g. "doctors".
	Label string
	// Singular is used in success messages, e.g. "Doctor".
	Singular string
	Columns  []string
	// Row returns the displayed fields of a record, in Columns order. Search
	// matches against the same strings.
	Row func(record T) []string
	// PrepareForm trims and checks a form before submission.
	PrepareForm func(form *Req) error
}

var Doctors = Resource[dto.DoctorResponse, dto.CreateDoctorRequest]{
	Path:     "/api/doctors",
	Label:    "doctors",
	Singular: "Doctor",
	Columns:  []string{"ID", "NAME", "SPECIALTY"},
	Row: func(d dto.DoctorResponse) []string {
		return []string{strconv.FormatInt(d.ID, 10), d.Name, d.Specialty}
	},
	PrepareForm: func(f *dto.CreateDoctorRequest) error {
		f.Name = strings.TrimSpace(f.Name)
		f.Specialty = strings.TrimSpace(f.Specialty)
		if f.Name == "" || f.Specialty == "" {
			return errMissingFields
		}
		return nil
	},
}

var Patients = Resource[dto.PatientResponse, dto.CreatePatientRequest]{
	Path:     "/api/patients",
	Label:    "patients",
	Singular: "Patient",
	Columns:  []string{"ID", "NAME", "AGE"},
	Row: func(p dto.PatientResponse) []string {
		return []string{strconv.FormatInt(p.ID, 10), p.Name, strconv.Itoa(p.Age)}
	},
	PrepareForm: func(f *dto.CreatePatientRequest) error {
		f.Name = strings.TrimSpace(f.Name)
		if f.Name == "" || f.Age == nil {
			return errMissingFields
		}
		if *f.Age < 0 {
			return &FormError{Message: "Age cannot be negative"}
		}
		return nil
	},
}

var Receptionists = Resource[dto.ReceptionistResponse, dto.CreateReceptionistRequest]{
	Path:     "/api/receptionists",
	Label:    "receptionists",
	Singular: "Receptionist",
	Columns:  []string{"ID", "NAME", "SHIFT", "SALARY"},
	Row: func(r dto.ReceptionistResponse) []string {
		return []string{strconv.FormatInt(r.ID, 10), r.Name, r.Shift, strconv.FormatFloat(r.Salary, 'f', 2, 64)}
	},
	PrepareForm: func(f *dto.CreateReceptionistRequest) error {
		f.Name = strings.TrimSpace(f.Name)
		f.Shift = strings.TrimSpace(f.Shift)
		if f.Name == "" || f.Shift == "" || f.Salary == nil {
			return &FormError{Message: "Please fill in all required fields with valid values"}
		}
		if *f.Salary < 0 {
			return &FormError{Message: "Salary cannot be negative"}
		}
		return nil
	},
}

// IsFormError reports whether err was raised before any request was sent.
func IsFormError(err error) bool {
	var formErr *FormError
	return errors.As(err, &formErr)
}
