package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents a clinic audit trail entry
type AuditLog struct {
	ID        uuid.UUID `json:"id"`
	Action    string    `json:"action"`
	Metadata  JSON      `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// JSON holds free-form audit metadata
type JSON map[string]interface{}

// Common audit actions
const (
	AuditActionDoctorCreate      = "doctor.create"
	AuditActionDoctorUpdate      = "doctor.update"
	AuditActionDoctorDelete      = "doctor.delete"
	AuditActionPatientCreate     = "patient.create"
	AuditActionPatientUpdate     = "patient.update"
	AuditActionPatientDelete     = "patient.delete"
	AuditActionAppointmentCreate = "appointment.create"
	AuditActionAppointmentCancel = "appointment.cancel"
	AuditActionBillGenerate      = "bill.generate"
	AuditActionDataLoad          = "data.load"
	AuditActionDataSave          = "data.save"
)
