package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-admin-console/internal/converter"
	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/domain/entity"
	"hospital-admin-console/internal/domain/repository"
)

var (
	ErrMedicalRecordNotFound = errors.New("medical record not found")
)

type MedicalRecordUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetAll(ctx context.Context, patientID int64, page, limit int) (*dto.MedicalRecordListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.MedicalRecordResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	Delete(ctx context.Context, id int64) error
}

type medicalRecordUsecase struct {
	recordRepo  repository.MedicalRecordRepository
	patientRepo repository.PatientRepository
}

func NewMedicalRecordUsecase(
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		recordRepo:  recordRepo,
		patientRepo: patientRepo,
	}
}

func (u *medicalRecordUsecase) Create(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	record := &entity.MedicalRecord{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		AppointmentID: req.AppointmentID,
		Diagnosis:     req.Diagnosis,
		Treatment:     req.Treatment,
		BloodPressure: req.BloodPressure,
		Weight:        req.Weight,
		Notes:         req.Notes,
		RecordedAt:    time.Now(),
	}

	if req.RecordedAt != "" {
		recordedAt, err := time.Parse("2006-01-02", req.RecordedAt)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		record.RecordedAt = recordedAt
	}

	if err := u.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) GetAll(ctx context.Context, patientID int64, page, limit int) (*dto.MedicalRecordListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	records, total, err := u.recordRepo.FindAll(ctx, patientID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Content:       converter.MedicalRecordsToResponses(records),
		TotalElements: total,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (u *medicalRecordUsecase) GetByID(ctx context.Context, id int64) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) Update(ctx context.Context, id int64, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	if req.Diagnosis != "" {
		record.Diagnosis = req.Diagnosis
	}
	if req.Treatment != "" {
		record.Treatment = req.Treatment
	}
	if req.BloodPressure != "" {
		record.BloodPressure = req.BloodPressure
	}
	if req.Weight != nil {
		record.Weight = *req.Weight
	}
	if req.Notes != "" {
		record.Notes = req.Notes
	}

	if err := u.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) Delete(ctx context.Context, id int64) error {
	affectedRows, err := u.recordRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affectedRows == 0 {
		return ErrMedicalRecordNotFound
	}
	return nil
}
