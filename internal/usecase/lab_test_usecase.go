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
	ErrLabTestNotFound = errors.New("lab test not found")
)

type LabTestUsecase interface {
	Create(ctx context.Context, req *dto.CreateLabTestRequest) (*dto.LabTestResponse, error)
	GetAll(ctx context.Context, patientID int64, status string, page, limit int) (*dto.LabTestListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.LabTestResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateLabTestRequest) (*dto.LabTestResponse, error)
	Delete(ctx context.Context, id int64) error
}

type labTestUsecase struct {
	labTestRepo repository.LabTestRepository
	patientRepo repository.PatientRepository
}

func NewLabTestUsecase(
	labTestRepo repository.LabTestRepository,
	patientRepo repository.PatientRepository,
) LabTestUsecase {
	return &labTestUsecase{
		labTestRepo: labTestRepo,
		patientRepo: patientRepo,
	}
}

func (u *labTestUsecase) Create(ctx context.Context, req *dto.CreateLabTestRequest) (*dto.LabTestResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	test := &entity.LabTest{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		TestName:  req.TestName,
		Category:  req.Category,
		Price:     req.Price,
		Status:    entity.LabTestStatusPending,
	}

	if err := u.labTestRepo.Create(ctx, test); err != nil {
		return nil, err
	}

	return converter.LabTestToResponse(test), nil
}

func (u *labTestUsecase) GetAll(ctx context.Context, patientID int64, status string, page, limit int) (*dto.LabTestListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	tests, total, err := u.labTestRepo.FindAll(ctx, patientID, status, limit, offset)
	if err != nil {
		return nil, err
	}

	return &dto.LabTestListResponse{
		Content:       converter.LabTestsToResponses(tests),
		TotalElements: total,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (u *labTestUsecase) GetByID(ctx context.Context, id int64) (*dto.LabTestResponse, error) {
	test, err := u.labTestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, ErrLabTestNotFound
	}

	return converter.LabTestToResponse(test), nil
}

func (u *labTestUsecase) Update(ctx context.Context, id int64, req *dto.UpdateLabTestRequest) (*dto.LabTestResponse, error) {
	test, err := u.labTestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, ErrLabTestNotFound
	}

	if req.TestName != "" {
		test.TestName = req.TestName
	}
	if req.Category != "" {
		test.Category = req.Category
	}
	if req.Result != "" {
		test.Result = req.Result
	}
	if req.Status != "" {
		test.Status = entity.LabTestStatus(req.Status)
		// Completion is stamped once, the first time the test reaches it
		if test.IsCompleted() && test.CompletedAt == nil {
			now := time.Now()
			test.CompletedAt = &now
		}
	}

	if err := u.labTestRepo.Update(ctx, test); err != nil {
		return nil, err
	}

	return converter.LabTestToResponse(test), nil
}

func (u *labTestUsecase) Delete(ctx context.Context, id int64) error {
	affectedRows, err := u.labTestRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affectedRows == 0 {
		return ErrLabTestNotFound
	}
	return nil
}
