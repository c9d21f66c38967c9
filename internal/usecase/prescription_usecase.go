package usecase

import (
	"context"
	"errors"

	"hospital-admin-console/internal/converter"
	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/domain/entity"
	"hospital-admin-console/internal/domain/repository"
)

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetAll(ctx context.Context, patientID int64, page, limit int) (*dto.PrescriptionListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PrescriptionResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Delete(ctx context.Context, id int64) error
}

type prescriptionUsecase struct {
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
	medicineRepo     repository.MedicineRepository
}

func NewPrescriptionUsecase(
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	medicineRepo repository.MedicineRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		medicineRepo:     medicineRepo,
	}
}

func (u *prescriptionUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Every prescribed line must reference a known medicine
	for _, item := range req.Items {
		medicine, err := u.medicineRepo.FindByID(ctx, item.MedicineID)
		if err != nil {
			return nil, err
		}
		if medicine == nil {
			return nil, ErrMedicineNotFound
		}
	}

	prescription := &entity.Prescription{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		AppointmentID: req.AppointmentID,
		Items:         converter.PrescriptionItemsFromRequests(req.Items),
		Notes:         req.Notes,
		Status:        entity.PrescriptionStatusActive,
	}

	if err := u.prescriptionRepo.Create(ctx, prescription); err != nil {
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) GetAll(ctx context.Context, patientID int64, page, limit int) (*dto.PrescriptionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	prescriptions, total, err := u.prescriptionRepo.FindAll(ctx, patientID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Content:       converter.PrescriptionsToResponses(prescriptions),
		TotalElements: total,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (u *prescriptionUsecase) GetByID(ctx context.Context, id int64) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) Update(ctx context.Context, id int64, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	if len(req.Items) > 0 {
		for _, item := range req.Items {
			medicine, err := u.medicineRepo.FindByID(ctx, item.MedicineID)
			if err != nil {
				return nil, err
			}
			if medicine == nil {
				return nil, ErrMedicineNotFound
			}
		}
		prescription.Items = converter.PrescriptionItemsFromRequests(req.Items)
	}
	if req.Notes != "" {
		prescription.Notes = req.Notes
	}
	if req.Status != "" {
		prescription.Status = req.Status
	}

	if err := u.prescriptionRepo.Update(ctx, prescription); err != nil {
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) Delete(ctx context.Context, id int64) error {
	affectedRows, err := u.prescriptionRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affectedRows == 0 {
		return ErrPrescriptionNotFound
	}
	return nil
}
