package usecase

import (
	"context"
	"fmt"

	"meditrack/internal/converter"
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
	"meditrack/internal/domain/repository"
	"meditrack/internal/service"
	"meditrack/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ErrDoctorNotFound = fmt.Errorf("doctor %w", ErrNotFound)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*entity.Doctor, error)
	CreateDoctorWithID(ctx context.Context, id string, req *dto.CreateDoctorRequest) (*entity.Doctor, error)
	GetDoctor(ctx context.Context, id string) (*entity.Doctor, error)
	GetAllDoctors(ctx context.Context) []*entity.Doctor
	UpdateDoctor(ctx context.Context, id string, req *dto.UpdateDoctorRequest) (*entity.Doctor, error)
	DeleteDoctor(ctx context.Context, id string) bool
	FilterBySpecialization(ctx context.Context, specialization entity.Specialization) []*entity.Doctor
	FeeStatistics(ctx context.Context) entity.FeeStatistics
}

type doctorUsecase struct {
	log          *logrus.Logger
	validator    *validator.CustomValidator
	idGenerator  *service.IDGenerator
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	idGenerator *service.IDGenerator,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:          log,
		validator:    validator,
		idGenerator:  idGenerator,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*entity.Doctor, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, newValidationError(u.validator, err)
	}
	return u.create(ctx, u.idGenerator.NextDoctorID(), req), nil
}

// CreateDoctorWithID stores a doctor under an existing id, as when reloading saved data
func (u *doctorUsecase) CreateDoctorWithID(ctx context.Context, id string, req *dto.CreateDoctorRequest) (*entity.Doctor, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := u.validator.Validate(req); err != nil {
		return nil, newValidationError(u.validator, err)
	}
	return u.create(ctx, id, req), nil
}

func (u *doctorUsecase) create(ctx context.Context, id string, req *dto.CreateDoctorRequest) *entity.Doctor {
	doctor := &entity.Doctor{
		ID:              id,
		Name:            req.Name,
		Age:             req.Age,
		Phone:           req.Phone,
		Specialization:  req.Specialization,
		ConsultationFee: req.ConsultationFee,
	}
	u.doctorRepo.Save(id, doctor)

	u.auditService.LogCreate(ctx, entity.AuditActionDoctorCreate, "doctor", id, converter.DoctorToResponse(doctor))

	return doctor.Copy()
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id string) (*entity.Doctor, error) {
	doctor, ok := u.doctorRepo.FindByID(id)
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return doctor.Copy(), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) []*entity.Doctor {
	stored := u.doctorRepo.FindAll()
	doctors := make([]*entity.Doctor, 0, len(stored))
	for _, d := range stored {
		doctors = append(doctors, d.Copy())
	}
	sortByID(doctors, func(d *entity.Doctor) string { return d.ID })
	return doctors
}

// UpdateDoctor changes the mutable fields of a doctor. Bills already issued
// keep the fee they were created with.
func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id string, req *dto.UpdateDoctorRequest) (*entity.Doctor, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, newValidationError(u.validator, err)
	}

	stored, ok := u.doctorRepo.FindByID(id)
	if !ok {
		return nil, ErrDoctorNotFound
	}

	oldValue := converter.DoctorToResponse(stored)

	doctor := stored.Copy()
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.ConsultationFee != nil {
		doctor.ConsultationFee = *req.ConsultationFee
	}
	u.doctorRepo.Save(id, doctor)

	u.auditService.LogUpdate(ctx, entity.AuditActionDoctorUpdate, "doctor", id, oldValue, converter.DoctorToResponse(doctor))

	return doctor.Copy(), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id string) bool {
	doctor, ok := u.doctorRepo.FindByID(id)
	if !ok {
		return false
	}
	if !u.doctorRepo.Delete(id) {
		return false
	}

	u.auditService.LogDelete(ctx, entity.AuditActionDoctorDelete, "doctor", id, converter.DoctorToResponse(doctor))
	u.log.Infof("Doctor deleted: id=%s", id)
	return true
}

func (u *doctorUsecase) FilterBySpecialization(ctx context.Context, specialization entity.Specialization) []*entity.Doctor {
	var doctors []*entity.Doctor
	for _, d := range u.GetAllDoctors(ctx) {
		if d.Specialization == specialization {
			doctors = append(doctors, d)
		}
	}
	return doctors
}

// FeeStatistics returns count, min, max and average fee. With no doctors
// every figure is zero.
func (u *doctorUsecase) FeeStatistics(ctx context.Context) entity.FeeStatistics {
	doctors := u.GetAllDoctors(ctx)
	if len(doctors) == 0 {
		return entity.FeeStatistics{}
	}

	first := doctors[0].ConsultationFee
	rest := make([]decimal.Decimal, 0, len(doctors)-1)
	for _, d := range doctors[1:] {
		rest = append(rest, d.ConsultationFee)
	}

	return entity.FeeStatistics{
		Count:   len(doctors),
		Min:     decimal.Min(first, rest...),
		Max:     decimal.Max(first, rest...),
		Average: decimal.Avg(first, rest...),
	}
}
