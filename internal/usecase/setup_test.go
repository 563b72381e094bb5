package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
	"meditrack/internal/repository"
	"meditrack/internal/service"
	"meditrack/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type testClinic struct {
	log          *logrus.Logger
	ids          *service.IDGenerator
	audit        service.AuditService
	doctors      DoctorUsecase
	patients     PatientUsecase
	appointments AppointmentUsecase
}

func newTestClinic(t *testing.T) *testClinic {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	v := validator.NewValidator()
	ids := service.NewIDGenerator()
	audit := service.NewAuditService(log, repository.NewAuditLogRepository())

	doctors := NewDoctorUsecase(log, v, ids, repository.NewDoctorRepository(), audit)
	patients := NewPatientUsecase(log, v, ids, repository.NewPatientRepository(), audit)
	appointments := NewAppointmentUsecase(log, ids, repository.NewAppointmentRepository(), doctors, patients, audit)

	return &testClinic{
		log:          log,
		ids:          ids,
		audit:        audit,
		doctors:      doctors,
		patients:     patients,
		appointments: appointments,
	}
}

func doctorRequest(name string, fee int64, specialization entity.Specialization) *dto.CreateDoctorRequest {
	return &dto.CreateDoctorRequest{
		Name:            name,
		Age:             45,
		Phone:           "1234567890",
		Specialization:  specialization,
		ConsultationFee: decimal.NewFromInt(fee),
	}
}

func patientRequest(name string, age int) *dto.CreatePatientRequest {
	return &dto.CreatePatientRequest{
		Name:  name,
		Age:   age,
		Phone: "0987654321",
	}
}

func (c *testClinic) mustDoctor(t *testing.T, name string, fee int64, specialization entity.Specialization) *entity.Doctor {
	t.Helper()
	d, err := c.doctors.CreateDoctor(context.Background(), doctorRequest(name, fee, specialization))
	require.NoError(t, err)
	return d
}

func (c *testClinic) mustPatient(t *testing.T, name string, age int) *entity.Patient {
	t.Helper()
	p, err := c.patients.CreatePatient(context.Background(), patientRequest(name, age))
	require.NoError(t, err)
	return p
}

func appointmentTime() time.Time {
	return time.Date(2025, 6, 2, 10, 30, 0, 0, time.Local)
}

func updateFee(fee decimal.Decimal) *dto.UpdateDoctorRequest {
	return &dto.UpdateDoctorRequest{ConsultationFee: &fee}
}
