package dto

// Request DTOs

type CreatePatientRequest struct {
	Name  string `json:"name" validate:"notblank"`
	Age   int    `json:"age" validate:"gt=0"`
	Phone string `json:"phone" validate:"notblank"`
}

// Response DTOs

type PatientResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Age            int      `json:"age"`
	Phone          string   `json:"phone"`
	MedicalHistory []string `json:"medical_history,omitempty"`
}
