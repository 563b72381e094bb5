package usecase

import (
	"context"
	"errors"
	"fmt"

	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
	"meditrack/internal/domain/repository"
	"meditrack/internal/service"

	"github.com/sirupsen/logrus"
)

// DataUsecase moves the clinic collections between the in-memory stores and
// a ClinicArchive. Archive failures are logged and never abort the process.
type DataUsecase interface {
	LoadInitialData(ctx context.Context) *dto.LoadReport
	SaveAll(ctx context.Context) error
}

type dataUsecase struct {
	log                *logrus.Logger
	archive            repository.ClinicArchive
	doctorUsecase      DoctorUsecase
	patientUsecase     PatientUsecase
	appointmentUsecase AppointmentUsecase
	auditService       service.AuditService
}

func NewDataUsecase(
	log *logrus.Logger,
	archive repository.ClinicArchive,
	doctorUsecase DoctorUsecase,
	patientUsecase PatientUsecase,
	appointmentUsecase AppointmentUsecase,
	auditService service.AuditService,
) DataUsecase {
	return &dataUsecase{
		log:                log,
		archive:            archive,
		doctorUsecase:      doctorUsecase,
		patientUsecase:     patientUsecase,
		appointmentUsecase: appointmentUsecase,
		auditService:       auditService,
	}
}

// LoadInitialData loads patients, then doctors, then appointments.
// Appointments whose patient or doctor was not loaded are skipped.
func (u *dataUsecase) LoadInitialData(ctx context.Context) *dto.LoadReport {
	report := &dto.LoadReport{}

	patients, err := u.archive.LoadPatients(ctx)
	if err != nil {
		u.log.Warnf("Failed to load patients, continuing with %d read: %+v", len(patients), err)
	}
	for _, p := range patients {
		req := &dto.CreatePatientRequest{Name: p.Name, Age: p.Age, Phone: p.Phone}
		if _, err := u.patientUsecase.CreatePatientWithID(ctx, p.ID, req); err != nil {
			u.log.Warnf("Skipping patient %s: %+v", p.ID, err)
			report.Skipped++
			continue
		}
		report.Patients++
	}

	doctors, err := u.archive.LoadDoctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to load doctors, continuing with %d read: %+v", len(doctors), err)
	}
	for _, d := range doctors {
		req := &dto.CreateDoctorRequest{
			Name:            d.Name,
			Age:             d.Age,
			Phone:           d.Phone,
			Specialization:  d.Specialization,
			ConsultationFee: d.ConsultationFee,
		}
		if _, err := u.doctorUsecase.CreateDoctorWithID(ctx, d.ID, req); err != nil {
			u.log.Warnf("Skipping doctor %s: %+v", d.ID, err)
			report.Skipped++
			continue
		}
		report.Doctors++
	}

	appointments, err := u.archive.LoadAppointments(ctx)
	if err != nil {
		u.log.Warnf("Failed to load appointments, continuing with %d read: %+v", len(appointments), err)
	}
	for _, a := range appointments {
		if !u.referencesLoaded(ctx, a) {
			u.log.Debugf("Skipping appointment %s: patient %s or doctor %s not loaded", a.ID, a.PatientID, a.DoctorID)
			report.Skipped++
			continue
		}
		if _, err := u.appointmentUsecase.CreateAppointmentWithID(ctx, a.ID, a.PatientID, a.DoctorID, a.DateTime, a.Status); err != nil {
			u.log.Warnf("Skipping appointment %s: %+v", a.ID, err)
			report.Skipped++
			continue
		}
		report.Appointments++
	}

	u.auditService.LogCreate(ctx, entity.AuditActionDataLoad, "data", "", report)
	u.log.Infof("Data loaded: patients=%d, doctors=%d, appointments=%d, skipped=%d",
		report.Patients, report.Doctors, report.Appointments, report.Skipped)

	return report
}

func (u *dataUsecase) referencesLoaded(ctx context.Context, a *entity.Appointment) bool {
	if _, err := u.patientUsecase.GetPatient(ctx, a.PatientID); err != nil {
		return false
	}
	if _, err := u.doctorUsecase.GetDoctor(ctx, a.DoctorID); err != nil {
		return false
	}
	return true
}

// SaveAll overwrites every collection in the archive. Each collection is
// attempted even if an earlier one failed; the failures are returned joined.
func (u *dataUsecase) SaveAll(ctx context.Context) error {
	var errs []error

	if err := u.archive.SavePatients(ctx, u.patientUsecase.GetAllPatients(ctx)); err != nil {
		u.log.Errorf("Failed to save patients: %+v", err)
		errs = append(errs, fmt.Errorf("save patients: %w", err))
	}
	if err := u.archive.SaveDoctors(ctx, u.doctorUsecase.GetAllDoctors(ctx)); err != nil {
		u.log.Errorf("Failed to save doctors: %+v", err)
		errs = append(errs, fmt.Errorf("save doctors: %w", err))
	}
	if err := u.archive.SaveAppointments(ctx, u.appointmentUsecase.GetAllAppointments(ctx)); err != nil {
		u.log.Errorf("Failed to save appointments: %+v", err)
		errs = append(errs, fmt.Errorf("save appointments: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	u.auditService.LogCreate(ctx, entity.AuditActionDataSave, "data", "", nil)
	u.log.Info("Data saved")
	return nil
}
