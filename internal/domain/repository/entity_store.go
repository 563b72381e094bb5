package repository

import "meditrack/internal/domain/entity"

// EntityStore is a keyed collection safe for concurrent use
type EntityStore[T any] interface {
	// Save inserts or replaces the entity stored under id
	Save(id string, item T)
	FindByID(id string) (T, bool)
	// FindAll returns a snapshot; later writes do not change it
	FindAll() []T
	// Delete reports whether an entity existed and was removed
	Delete(id string) bool
	Count() int
}

type DoctorRepository = EntityStore[*entity.Doctor]

type PatientRepository = EntityStore[*entity.Patient]

type AppointmentRepository = EntityStore[*entity.Appointment]

type AuditLogRepository = EntityStore[*entity.AuditLog]
