package repository

import (
	"context"

	"meditrack/internal/domain/entity"
)

// ClinicArchive persists the clinic collections outside the process.
// Load methods return every record read before a failure together with
// the error, so callers can continue with partial data.
type ClinicArchive interface {
	LoadPatients(ctx context.Context) ([]*entity.Patient, error)
	LoadDoctors(ctx context.Context) ([]*entity.Doctor, error)
	LoadAppointments(ctx context.Context) ([]*entity.Appointment, error)
	SavePatients(ctx context.Context, patients []*entity.Patient) error
	SaveDoctors(ctx context.Context, doctors []*entity.Doctor) error
	SaveAppointments(ctx context.Context, appointments []*entity.Appointment) error
}
