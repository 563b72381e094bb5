package usecase

import (
	"context"
	"errors"
	"testing"

	"meditrack/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArchive struct {
	patients     []*entity.Patient
	doctors      []*entity.Doctor
	appointments []*entity.Appointment

	loadPatientsErr     error
	saveDoctorsErr      error
	saveAppointmentsErr error
}

func (a *fakeArchive) LoadPatients(ctx context.Context) ([]*entity.Patient, error) {
	return a.patients, a.loadPatientsErr
}

func (a *fakeArchive) LoadDoctors(ctx context.Context) ([]*entity.Doctor, error) {
	return a.doctors, nil
}

func (a *fakeArchive) LoadAppointments(ctx context.Context) ([]*entity.Appointment, error) {
	return a.appointments, nil
}

func (a *fakeArchive) SavePatients(ctx context.Context, patients []*entity.Patient) error {
	a.patients = patients
	return nil
}

func (a *fakeArchive) SaveDoctors(ctx context.Context, doctors []*entity.Doctor) error {
	if a.saveDoctorsErr != nil {
		return a.saveDoctorsErr
	}
	a.doctors = doctors
	return nil
}

func (a *fakeArchive) SaveAppointments(ctx context.Context, appointments []*entity.Appointment) error {
	if a.saveAppointmentsErr != nil {
		return a.saveAppointmentsErr
	}
	a.appointments = appointments
	return nil
}

func (c *testClinic) dataUsecase(archive *fakeArchive) DataUsecase {
	return NewDataUsecase(c.log, archive, c.doctors, c.patients, c.appointments, c.audit)
}

func TestLoadInitialData(t *testing.T) {
	c := newTestClinic(t)
	ctx := context.Background()
	archive := &fakeArchive{
		patients: []*entity.Patient{
			{ID: "P1", Name: "Alice", Age: 30, Phone: "111"},
			{ID: "P2", Name: "", Age: 40, Phone: "222"},
		},
		doctors: []*entity.Doctor{
			{ID: "D1", Name: "Dr. Smith", Age: 50, Phone: "333", Specialization: entity.SpecializationCardiologist, ConsultationFee: decimal.NewFromInt(500)},
		},
		appointments: []*entity.Appointment{
			{ID: "A1", PatientID: "P1", DoctorID: "D1", DateTime: appointmentTime(), Status: entity.AppointmentStatusConfirmed},
			{ID: "A2", PatientID: "P9", DoctorID: "D1", DateTime: appointmentTime(), Status: entity.AppointmentStatusConfirmed},
			{ID: "A3", PatientID: "P1", DoctorID: "D9", DateTime: appointmentTime(), Status: entity.AppointmentStatusCancelled},
		},
	}

	report := c.dataUsecase(archive).LoadInitialData(ctx)

	assert.Equal(t, 1, report.Patients)
	assert.Equal(t, 1, report.Doctors)
	assert.Equal(t, 1, report.Appointments)
	assert.Equal(t, 3, report.Skipped)

	a, err := c.appointments.GetAppointment(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "P1", a.PatientID)
	_, err = c.appointments.GetAppointment(ctx, "A2")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	bill, err := c.appointments.GenerateBill(ctx, "A1")
	require.NoError(t, err)
	assert.True(t, bill.CalculateTotalAmount().Equal(decimal.NewFromInt(590)))
}

func TestLoadInitialData_ContinuesWithPartialData(t *testing.T) {
	c := newTestClinic(t)
	archive := &fakeArchive{
		patients:        []*entity.Patient{{ID: "P1", Name: "Alice", Age: 30, Phone: "111"}},
		loadPatientsErr: errors.New("disk on fire"),
	}

	report := c.dataUsecase(archive).LoadInitialData(context.Background())

	assert.Equal(t, 1, report.Patients)
	assert.Zero(t, report.Doctors)
	assert.Zero(t, report.Appointments)
}

func TestSaveAll(t *testing.T) {
	c := newTestClinic(t)
	ctx := context.Background()
	d := c.mustDoctor(t, "Dr. Smith", 500, entity.SpecializationCardiologist)
	p := c.mustPatient(t, "Alice", 30)
	_, err := c.appointments.CreateAppointment(ctx, p.ID, d.ID, appointmentTime())
	require.NoError(t, err)
	archive := &fakeArchive{}

	require.NoError(t, c.dataUsecase(archive).SaveAll(ctx))

	require.Len(t, archive.patients, 1)
	require.Len(t, archive.doctors, 1)
	require.Len(t, archive.appointments, 1)
	assert.Equal(t, "A1", archive.appointments[0].ID)
}

func TestSaveAll_AttemptsEveryCollection(t *testing.T) {
	c := newTestClinic(t)
	c.mustPatient(t, "Alice", 30)
	doctorsErr := errors.New("doctors.csv: permission denied")
	appointmentsErr := errors.New("appointments.csv: permission denied")
	archive := &fakeArchive{saveDoctorsErr: doctorsErr, saveAppointmentsErr: appointmentsErr}

	err := c.dataUsecase(archive).SaveAll(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, doctorsErr)
	assert.ErrorIs(t, err, appointmentsErr)
	assert.Len(t, archive.patients, 1)
}

func TestUsecases_RecordAuditTrail(t *testing.T) {
	c := newTestClinic(t)
	ctx := context.Background()
	d := c.mustDoctor(t, "Dr. Smith", 500, entity.SpecializationCardiologist)
	p := c.mustPatient(t, "Alice", 30)
	a, err := c.appointments.CreateAppointment(ctx, p.ID, d.ID, appointmentTime())
	require.NoError(t, err)
	require.NoError(t, c.appointments.CancelAppointment(ctx, a.ID))

	var actions []string
	for _, entry := range c.audit.List(ctx) {
		actions = append(actions, entry.Action)
	}

	assert.ElementsMatch(t, []string{
		entity.AuditActionDoctorCreate,
		entity.AuditActionPatientCreate,
		entity.AuditActionAppointmentCreate,
		entity.AuditActionAppointmentCancel,
	}, actions)

	logs := NewAuditLogUsecase(c.audit).GetAllAuditLogs(ctx)
	assert.Equal(t, 4, logs.Total)
}
