package usecase

import (
	"context"
	"fmt"
	"time"

	"meditrack/internal/domain/entity"
	"meditrack/internal/domain/repository"
	"meditrack/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ErrAppointmentNotFound = fmt.Errorf("appointment %w", ErrNotFound)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, patientID, doctorID string, dateTime time.Time) (*entity.Appointment, error)
	CreateAppointmentWithID(ctx context.Context, id, patientID, doctorID string, dateTime time.Time, status entity.AppointmentStatus) (*entity.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*entity.Appointment, error)
	GetAllAppointments(ctx context.Context) []*entity.Appointment
	CancelAppointment(ctx context.Context, id string) error
	GenerateBill(ctx context.Context, appointmentID string) (*entity.Bill, error)
	GenerateDiscountedBill(ctx context.Context, appointmentID string, discountRate decimal.Decimal) (*entity.Bill, error)
	GetAppointmentsPerDoctor(ctx context.Context) map[string]int
}

type appointmentUsecase struct {
	log             *logrus.Logger
	idGenerator     *service.IDGenerator
	appointmentRepo repository.AppointmentRepository
	doctorUsecase   DoctorUsecase
	patientUsecase  PatientUsecase
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	idGenerator *service.IDGenerator,
	appointmentRepo repository.AppointmentRepository,
	doctorUsecase DoctorUsecase,
	patientUsecase PatientUsecase,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		idGenerator:     idGenerator,
		appointmentRepo: appointmentRepo,
		doctorUsecase:   doctorUsecase,
		patientUsecase:  patientUsecase,
		auditService:    auditService,
	}
}

// CreateAppointment books a confirmed appointment. Both patient and doctor
// must exist at the time of the call.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, patientID, doctorID string, dateTime time.Time) (*entity.Appointment, error) {
	if err := u.checkReferences(ctx, patientID, doctorID, dateTime); err != nil {
		return nil, err
	}
	return u.create(ctx, u.idGenerator.NextAppointmentID(), patientID, doctorID, dateTime, entity.AppointmentStatusConfirmed), nil
}

// CreateAppointmentWithID keeps an existing id and status, as when reloading saved data
func (u *appointmentUsecase) CreateAppointmentWithID(ctx context.Context, id, patientID, doctorID string, dateTime time.Time, status entity.AppointmentStatus) (*entity.Appointment, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("status %q is not a known appointment status", status)}
	}
	if err := u.checkReferences(ctx, patientID, doctorID, dateTime); err != nil {
		return nil, err
	}
	return u.create(ctx, id, patientID, doctorID, dateTime, status), nil
}

func (u *appointmentUsecase) checkReferences(ctx context.Context, patientID, doctorID string, dateTime time.Time) error {
	if dateTime.IsZero() {
		return &ValidationError{Field: "date_time", Message: "date_time is required"}
	}
	if _, err := u.patientUsecase.GetPatient(ctx, patientID); err != nil {
		return err
	}
	if _, err := u.doctorUsecase.GetDoctor(ctx, doctorID); err != nil {
		return err
	}
	return nil
}

func (u *appointmentUsecase) create(ctx context.Context, id, patientID, doctorID string, dateTime time.Time, status entity.AppointmentStatus) *entity.Appointment {
	appointment := &entity.Appointment{
		ID:        id,
		PatientID: patientID,
		DoctorID:  doctorID,
		DateTime:  dateTime,
		Status:    status,
	}
	u.appointmentRepo.Save(id, appointment)

	u.auditService.LogCreate(ctx, entity.AuditActionAppointmentCreate, "appointment", id, appointment.Copy())
	u.log.Infof("Appointment created: id=%s, patient=%s, doctor=%s", id, patientID, doctorID)

	return appointment.Copy()
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id string) (*entity.Appointment, error) {
	appointment, ok := u.appointmentRepo.FindByID(id)
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return appointment.Copy(), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) []*entity.Appointment {
	stored := u.appointmentRepo.FindAll()
	appointments := make([]*entity.Appointment, 0, len(stored))
	for _, a := range stored {
		appointments = append(appointments, a.Copy())
	}
	sortByID(appointments, func(a *entity.Appointment) string { return a.ID })
	return appointments
}

// CancelAppointment marks an appointment cancelled. Cancelling twice is allowed.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id string) error {
	stored, ok := u.appointmentRepo.FindByID(id)
	if !ok {
		return ErrAppointmentNotFound
	}

	appointment := stored.Copy()
	appointment.Cancel()
	u.appointmentRepo.Save(id, appointment)

	u.auditService.LogUpdate(ctx, entity.AuditActionAppointmentCancel, "appointment", id, stored.Status, appointment.Status)
	u.log.Infof("Appointment cancelled: id=%s", id)
	return nil
}

// GenerateBill bills the doctor's current fee with standard tax
func (u *appointmentUsecase) GenerateBill(ctx context.Context, appointmentID string) (*entity.Bill, error) {
	appointment, fee, err := u.billable(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	bill := entity.NewStandardBill(u.idGenerator.NextBillID(), appointment, fee)
	u.auditService.LogCreate(ctx, entity.AuditActionBillGenerate, "bill", bill.ID, bill.ToSummary())
	return bill, nil
}

// GenerateDiscountedBill bills the doctor's current fee, discounted before tax
func (u *appointmentUsecase) GenerateDiscountedBill(ctx context.Context, appointmentID string, discountRate decimal.Decimal) (*entity.Bill, error) {
	appointment, fee, err := u.billable(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	bill := entity.NewDiscountedBill(u.idGenerator.NextBillID(), appointment, fee, discountRate)
	u.auditService.LogCreate(ctx, entity.AuditActionBillGenerate, "bill", bill.ID, bill.ToSummary())
	return bill, nil
}

func (u *appointmentUsecase) billable(ctx context.Context, appointmentID string) (*entity.Appointment, decimal.Decimal, error) {
	appointment, err := u.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	doctor, err := u.doctorUsecase.GetDoctor(ctx, appointment.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s for appointment %s: %+v", appointment.DoctorID, appointmentID, err)
		return nil, decimal.Zero, err
	}

	return appointment, doctor.ConsultationFee, nil
}

// GetAppointmentsPerDoctor counts appointments by doctor id. Doctors without
// appointments are not in the map.
func (u *appointmentUsecase) GetAppointmentsPerDoctor(ctx context.Context) map[string]int {
	counts := make(map[string]int)
	for _, a := range u.appointmentRepo.FindAll() {
		counts[a.DoctorID]++
	}
	return counts
}
