package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hospital-admin-console/internal/converter"
	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/delivery/http/middleware"
	"hospital-admin-console/internal/domain/entity"
	"hospital-admin-console/internal/domain/repository"
	"hospital-admin-console/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetAll(ctx context.Context, search string, page, limit int) (*dto.PatientListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PatientResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id int64) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Gender:         req.Gender,
		BloodGroup:     req.BloodGroup,
		Address:        req.Address,
		VitalSigns:     req.VitalSigns,
		MedicalHistory: req.MedicalHistory,
		Status:         entity.StatusActive,
	}

	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.DateOfBirth = &dob
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.audit(ctx, entity.AuditActionPatientCreate, patient.ID, nil, converter.PatientToResponse(patient))
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAll(ctx context.Context, search string, page, limit int) (*dto.PatientListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	patients, total, err := u.patientRepo.FindAll(ctx, search, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Content:       converter.PatientsToResponses(patients),
		TotalElements: total,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := converter.PatientToResponse(patient)

	if req.Name != "" {
		patient.Name = req.Name
	}
	if req.Email != "" {
		patient.Email = req.Email
	}
	if req.Phone != "" {
		patient.Phone = req.Phone
	}
	if req.BloodGroup != "" {
		patient.BloodGroup = req.BloodGroup
	}
	if req.Address != "" {
		patient.Address = req.Address
	}
	if req.VitalSigns != nil {
		patient.VitalSigns = req.VitalSigns
	}
	if req.MedicalHistory != "" {
		patient.MedicalHistory = req.MedicalHistory
	}
	if req.Status != "" {
		patient.Status = req.Status
	}

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	u.audit(ctx, entity.AuditActionPatientUpdate, id, oldValue, converter.PatientToResponse(patient))
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id int64) error {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	oldValue := converter.PatientToResponse(patient)

	affectedRows, err := u.patientRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrPatientNotFound
	}

	u.audit(ctx, entity.AuditActionPatientDelete, id, oldValue, nil)
	return nil
}

func (u *patientUsecase) audit(ctx context.Context, action string, id int64, oldValue, newValue interface{}) {
	actorID, _ := middleware.GetUserIDFromContext(ctx)
	entityID := strconv.FormatInt(id, 10)

	var err error
	switch {
	case oldValue == nil:
		err = u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &actorID, action, "patient", entityID, newValue)
	case newValue == nil:
		err = u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &actorID, action, "patient", entityID, oldValue)
	default:
		err = u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &actorID, action, "patient", entityID, oldValue, newValue)
	}
	if err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
}
