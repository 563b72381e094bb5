package usecase

import (
	"context"
	"fmt"
	"strings"

	"meditrack/internal/converter"
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
	"meditrack/internal/domain/repository"
	"meditrack/internal/service"
	"meditrack/pkg/validator"

	"github.com/sirupsen/logrus"
)

var ErrPatientNotFound = fmt.Errorf("patient %w", ErrNotFound)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*entity.Patient, error)
	CreatePatientWithID(ctx context.Context, id string, req *dto.CreatePatientRequest) (*entity.Patient, error)
	GetPatient(ctx context.Context, id string) (*entity.Patient, error)
	GetAllPatients(ctx context.Context) []*entity.Patient
	SearchByName(ctx context.Context, name string) []*entity.Patient
	SearchByAge(ctx context.Context, age int) []*entity.Patient
	AddMedicalHistory(ctx context.Context, id string, entry string) (*entity.Patient, error)
	DeletePatient(ctx context.Context, id string) bool
}

type patientUsecase struct {
	log          *logrus.Logger
	validator    *validator.CustomValidator
	idGenerator  *service.IDGenerator
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	idGenerator *service.IDGenerator,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:          log,
		validator:    validator,
		idGenerator:  idGenerator,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*entity.Patient, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, newValidationError(u.validator, err)
	}
	return u.create(ctx, u.idGenerator.NextPatientID(), req), nil
}

// CreatePatientWithID stores a patient under an existing id, as when reloading saved data
func (u *patientUsecase) CreatePatientWithID(ctx context.Context, id string, req *dto.CreatePatientRequest) (*entity.Patient, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := u.validator.Validate(req); err != nil {
		return nil, newValidationError(u.validator, err)
	}
	return u.create(ctx, id, req), nil
}

func (u *patientUsecase) create(ctx context.Context, id string, req *dto.CreatePatientRequest) *entity.Patient {
	patient := &entity.Patient{
		ID:    id,
		Name:  req.Name,
		Age:   req.Age,
		Phone: req.Phone,
	}
	u.patientRepo.Save(id, patient)

	u.auditService.LogCreate(ctx, entity.AuditActionPatientCreate, "patient", id, converter.PatientToResponse(patient))

	return patient.Clone()
}

func (u *patientUsecase) GetPatient(ctx context.Context, id string) (*entity.Patient, error) {
	patient, ok := u.patientRepo.FindByID(id)
	if !ok {
		return nil, ErrPatientNotFound
	}
	return patient.Clone(), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) []*entity.Patient {
	stored := u.patientRepo.FindAll()
	patients := make([]*entity.Patient, 0, len(stored))
	for _, p := range stored {
		patients = append(patients, p.Clone())
	}
	sortByID(patients, func(p *entity.Patient) string { return p.ID })
	return patients
}

// SearchByName matches the whole name, ignoring case
func (u *patientUsecase) SearchByName(ctx context.Context, name string) []*entity.Patient {
	var patients []*entity.Patient
	for _, p := range u.GetAllPatients(ctx) {
		if strings.EqualFold(p.Name, name) {
			patients = append(patients, p)
		}
	}
	return patients
}

func (u *patientUsecase) SearchByAge(ctx context.Context, age int) []*entity.Patient {
	var patients []*entity.Patient
	for _, p := range u.GetAllPatients(ctx) {
		if p.Age == age {
			patients = append(patients, p)
		}
	}
	return patients
}

func (u *patientUsecase) AddMedicalHistory(ctx context.Context, id string, entry string) (*entity.Patient, error) {
	stored, ok := u.patientRepo.FindByID(id)
	if !ok {
		return nil, ErrPatientNotFound
	}

	patient := stored.Clone()
	if err := patient.AddMedicalHistoryEntry(entry); err != nil {
		return nil, &ValidationError{Field: "medical_history", Message: err.Error()}
	}
	u.patientRepo.Save(id, patient)

	u.auditService.LogUpdate(ctx, entity.AuditActionPatientUpdate, "patient", id, converter.PatientToResponse(stored), converter.PatientToResponse(patient))

	return patient.Clone(), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id string) bool {
	patient, ok := u.patientRepo.FindByID(id)
	if !ok {
		return false
	}
	if !u.patientRepo.Delete(id) {
		return false
	}

	u.auditService.LogDelete(ctx, entity.AuditActionPatientDelete, "patient", id, converter.PatientToResponse(patient))
	u.log.Infof("Patient deleted: id=%s", id)
	return true
}
