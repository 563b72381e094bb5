package converter

import (
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:             patient.ID,
		Name:           patient.Name,
		Age:            patient.Age,
		Phone:          patient.Phone,
		MedicalHistory: patient.MedicalHistory(),
	}
}
