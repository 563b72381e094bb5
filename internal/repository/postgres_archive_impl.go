package repository

import (
	"context"

	"meditrack/internal/domain/entity"
	domainRepo "meditrack/internal/domain/repository"

	"gorm.io/gorm"
)

const saveBatchSize = 100

type postgresArchive struct {
	db *gorm.DB
}

// NewPostgresArchive keeps the clinic collections in postgres tables.
// Each save replaces the whole table inside one transaction.
func NewPostgresArchive(db *gorm.DB) domainRepo.ClinicArchive {
	return &postgresArchive{db: db}
}

func (r *postgresArchive) LoadPatients(ctx context.Context) ([]*entity.Patient, error) {
	var patients []*entity.Patient
	err := r.db.WithContext(ctx).Order("id").Find(&patients).Error
	return patients, err
}

func (r *postgresArchive) LoadDoctors(ctx context.Context) ([]*entity.Doctor, error) {
	var doctors []*entity.Doctor
	err := r.db.WithContext(ctx).Order("id").Find(&doctors).Error
	return doctors, err
}

func (r *postgresArchive) LoadAppointments(ctx context.Context) ([]*entity.Appointment, error) {
	var appointments []*entity.Appointment
	err := r.db.WithContext(ctx).Order("id").Find(&appointments).Error
	return appointments, err
}

func (r *postgresArchive) SavePatients(ctx context.Context, patients []*entity.Patient) error {
	return replaceAll(r.db.WithContext(ctx), &entity.Patient{}, patients)
}

func (r *postgresArchive) SaveDoctors(ctx context.Context, doctors []*entity.Doctor) error {
	return replaceAll(r.db.WithContext(ctx), &entity.Doctor{}, doctors)
}

func (r *postgresArchive) SaveAppointments(ctx context.Context, appointments []*entity.Appointment) error {
	return replaceAll(r.db.WithContext(ctx), &entity.Appointment{}, appointments)
}

func replaceAll[T any](db *gorm.DB, model *T, rows []*T) error {
	tx := db.Begin()
	defer tx.Rollback()

	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
		return err
	}
	if len(rows) > 0 {
		if err := tx.CreateInBatches(rows, saveBatchSize).Error; err != nil {
			return err
		}
	}

	return tx.Commit().Error
}
