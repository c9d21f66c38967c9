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
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentAlreadyCancelled = errors.New("appointment is already cancelled")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context, filter *dto.AppointmentFilterQuery, page, limit int) (*dto.AppointmentListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Confirm(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	// Referenced records must exist at creation time. Later deletes do not
	// cascade; the reference simply dangles.
	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      date,
		Time:      req.Time,
		Type:      req.Type,
		Notes:     req.Notes,
		Status:    entity.AppointmentStatusScheduled,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.audit(ctx, entity.AuditActionAppointmentCreate, appointment.ID, nil, converter.AppointmentToResponse(appointment))
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context, filter *dto.AppointmentFilterQuery, page, limit int) (*dto.AppointmentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	domainFilter := entity.AppointmentFilter{}
	if filter != nil {
		domainFilter = entity.AppointmentFilter{
			StartAt:    filter.StartAt,
			EndAt:      filter.EndAt,
			DoctorID:   filter.DoctorID,
			PatientID:  filter.PatientID,
			Status:     filter.Status,
			DoctorName: filter.DoctorName,
		}
	}

	appointments, total, err := u.appointmentRepo.FindAll(ctx, domainFilter, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Content:       converter.AppointmentsToResponses(appointments),
		TotalElements: total,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldValue := converter.AppointmentToResponse(appointment)

	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		appointment.Date = date
	}
	if req.Time != "" {
		appointment.Time = req.Time
	}
	if req.Type != "" {
		appointment.Type = req.Type
	}
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}
	if req.Status != "" {
		appointment.Status = entity.AppointmentStatus(req.Status)
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	u.audit(ctx, entity.AuditActionAppointmentUpdate, id, oldValue, converter.AppointmentToResponse(appointment))
	return converter.AppointmentToResponse(appointment), nil
}

// Confirm moves a scheduled appointment to confirmed.
func (u *appointmentUsecase) Confirm(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentAlreadyCancelled
	}

	oldValue := converter.AppointmentToResponse(appointment)

	appointment.Confirm()
	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to confirm appointment: %+v", err)
		return nil, err
	}

	u.audit(ctx, entity.AuditActionAppointmentUpdate, id, oldValue, converter.AppointmentToResponse(appointment))
	return converter.AppointmentToResponse(appointment), nil
}

// Cancel flips the appointment to cancelled. The repository guards the
// transition so a concurrent double-cancel cannot slip through.
func (u *appointmentUsecase) Cancel(ctx context.Context, id int64) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	oldValue := converter.AppointmentToResponse(appointment)

	affectedRows, err := u.appointmentRepo.Cancel(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrAppointmentAlreadyCancelled
	}

	appointment.Cancel()
	u.audit(ctx, entity.AuditActionAppointmentCancel, id, oldValue, converter.AppointmentToResponse(appointment))
	return nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id int64) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	oldValue := converter.AppointmentToResponse(appointment)

	affectedRows, err := u.appointmentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrAppointmentNotFound
	}

	u.audit(ctx, entity.AuditActionAppointmentDelete, id, oldValue, nil)
	return nil
}

func (u *appointmentUsecase) audit(ctx context.Context, action string, id int64, oldValue, newValue interface{}) {
	actorID, _ := middleware.GetUserIDFromContext(ctx)
	entityID := strconv.FormatInt(id, 10)

	var err error
	switch {
	case oldValue == nil:
		err = u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &actorID, action, "appointment", entityID, newValue)
	case newValue == nil:
		err = u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &actorID, action, "appointment", entityID, oldValue)
	default:
		err = u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &actorID, action, "appointment", entityID, oldValue, newValue)
	}
	if err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
}
