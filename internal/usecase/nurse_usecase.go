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
	ErrNurseNotFound    = errors.New("nurse not found")
	ErrNurseEmailExists = errors.New("email already exists")
)

type NurseUsecase interface {
	Create(ctx context.Context, req *dto.CreateNurseRequest) (*dto.NurseResponse, error)
	GetAll(ctx context.Context, search string, page, limit int) (*dto.NurseListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.NurseResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateNurseRequest) (*dto.NurseResponse, error)
	Delete(ctx context.Context, id int64) error
}

type nurseUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	nurseRepo    repository.NurseRepository
	auditService service.AuditService
}

func NewNurseUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	nurseRepo repository.NurseRepository,
	auditService service.AuditService,
) NurseUsecase {
	return &nurseUsecase{
		db:           db,
		log:          log,
		nurseRepo:    nurseRepo,
		auditService: auditService,
	}
}

func (u *nurseUsecase) Create(ctx context.Context, req *dto.CreateNurseRequest) (*dto.NurseResponse, error) {
	nurse := &entity.Nurse{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Shift:      req.Shift,
		Status:     entity.StatusActive,
	}

	if err := u.nurseRepo.Create(ctx, nurse); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrNurseEmailExists
		}
		u.log.Warnf("Failed to create nurse: %+v", err)
		return nil, err
	}

	u.audit(ctx, entity.AuditActionNurseCreate, nurse.ID, nil, converter.NurseToResponse(nurse))
	return converter.NurseToResponse(nurse), nil
}

func (u *nurseUsecase) GetAll(ctx context.Context, search string, page, limit int) (*dto.NurseListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	nurses, total, err := u.nurseRepo.FindAll(ctx, search, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find all nurses: %+v", err)
		return nil, err
	}

	return &dto.NurseListResponse{
		Content:       converter.NursesToResponses(nurses),
		TotalElements: total,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (u *nurseUsecase) GetByID(ctx context.Context, id int64) (*dto.NurseResponse, error) {
	nurse, err := u.nurseRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find nurse: %+v", err)
		return nil, err
	}
	if nurse == nil {
		return nil, ErrNurseNotFound
	}

	return converter.NurseToResponse(nurse), nil
}

func (u *nurseUsecase) Update(ctx context.Context, id int64, req *dto.UpdateNurseRequest) (*dto.NurseResponse, error) {
	nurse, err := u.nurseRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find nurse: %+v", err)
		return nil, err
	}
	if nurse == nil {
		return nil, ErrNurseNotFound
	}

	oldValue := converter.NurseToResponse(nurse)

	if req.Name != "" {
		nurse.Name = req.Name
	}
	if req.Email != "" {
		nurse.Email = req.Email
	}
	if req.Phone != "" {
		nurse.Phone = req.Phone
	}
	if req.Department != "" {
		nurse.Department = req.Department
	}
	if req.Shift != "" {
		nurse.Shift = req.Shift
	}
	if req.Status != "" {
		nurse.Status = req.Status
	}

	if err := u.nurseRepo.Update(ctx, nurse); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrNurseEmailExists
		}
		u.log.Warnf("Failed to update nurse: %+v", err)
		return nil, err
	}

	u.audit(ctx, entity.AuditActionNurseUpdate, id, oldValue, converter.NurseToResponse(nurse))
	return converter.NurseToResponse(nurse), nil
}

func (u *nurseUsecase) Delete(ctx context.Context, id int64) error {
	nurse, err := u.nurseRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find nurse: %+v", err)
		return err
	}
	if nurse == nil {
		return ErrNurseNotFound
	}
	oldValue := converter.NurseToResponse(nurse)

	affectedRows, err := u.nurseRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete nurse: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrNurseNotFound
	}

	u.audit(ctx, entity.AuditActionNurseDelete, id, oldValue, nil)
	return nil
}

func (u *nurseUsecase) audit(ctx context.Context, action string, id int64, oldValue, newValue interface{}) {
	actorID, _ := middleware.GetUserIDFromContext(ctx)
	entityID := strconv.FormatInt(id, 10)

	var err error
	switch {
	case oldValue == nil:
		err = u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &actorID, action, "nurse", entityID, newValue)
	case newValue == nil:
		err = u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &actorID, action, "nurse", entityID, oldValue)
	default:
		err = u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &actorID, action, "nurse", entityID, oldValue, newValue)
	}
	if err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
}
