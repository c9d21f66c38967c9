package usecase

import (
	"context"
	"errors"
	"strconv"

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
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrDoctorEmailExists = errors.New("email already exists")
)

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetAll(ctx context.Context, search string, page, limit int) (*dto.DoctorListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.DoctorResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id int64) error
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Specialization:  req.Specialization,
		Department:      req.Department,
		ExperienceYears: req.ExperienceYears,
		Status:          entity.StatusActive,
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	u.audit(ctx, entity.AuditActionDoctorCreate, doctor.ID, nil, converter.DoctorToResponse(doctor))
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAll(ctx context.Context, search string, page, limit int) (*dto.DoctorListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	doctors, total, err := u.doctorRepo.FindAll(ctx, search, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Content:       converter.DoctorsToResponses(doctors),
		TotalElements: total,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id int64) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id int64, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	oldValue := converter.DoctorToResponse(doctor)

	if req.Name != "" {
		doctor.Name = req.Name
	}
	if req.Email != "" {
		doctor.Email = req.Email
	}
	if req.Phone != "" {
		doctor.Phone = req.Phone
	}
	if req.Specialization != "" {
		doctor.Specialization = req.Specialization
	}
	if req.Department != "" {
		doctor.Department = req.Department
	}
	if req.ExperienceYears != nil {
		doctor.ExperienceYears = *req.ExperienceYears
	}
	if req.Status != "" {
		doctor.Status = req.Status
	}

	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	u.audit(ctx, entity.AuditActionDoctorUpdate, id, oldValue, converter.DoctorToResponse(doctor))
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id int64) error {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}
	oldValue := converter.DoctorToResponse(doctor)

	affectedRows, err := u.doctorRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	u.audit(ctx, entity.AuditActionDoctorDelete, id, oldValue, nil)
	return nil
}

// audit writes the trail entry outside the mutation; failures are logged
// and never surfaced to the caller.
func (u *doctorUsecase) audit(ctx context.Context, action string, id int64, oldValue, newValue interface{}) {
	actorID, _ := middleware.GetUserIDFromContext(ctx)
	entityID := strconv.FormatInt(id, 10)

	var err error
	switch {
	case oldValue == nil:
		err = u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &actorID, action, "doctor", entityID, newValue)
	case newValue == nil:
		err = u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &actorID, action, "doctor", entityID, oldValue)
	default:
		err = u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &actorID, action, "doctor", entityID, oldValue, newValue)
	}
	if err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
}
