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
	ErrMedicineNotFound = errors.New("medicine not found")
)

type MedicineUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	GetAll(ctx context.Context, search string, lowStockBelow, page, limit int) (*dto.MedicineListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.MedicineResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	Delete(ctx context.Context, id int64) error
}

type medicineUsecase struct {
	medicineRepo repository.MedicineRepository
}

func NewMedicineUsecase(medicineRepo repository.MedicineRepository) MedicineUsecase {
	return &medicineUsecase{medicineRepo: medicineRepo}
}

func (u *medicineUsecase) Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	medicine := &entity.Medicine{
		Name:         req.Name,
		Category:     req.Category,
		Manufacturer: req.Manufacturer,
		Price:        req.Price,
		Stock:        req.Stock,
		Status:       entity.StatusActive,
	}

	if req.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		medicine.ExpiryDate = &expiry
	}

	if err := u.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) GetAll(ctx context.Context, search string, lowStockBelow, page, limit int) (*dto.MedicineListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	medicines, total, err := u.medicineRepo.FindAll(ctx, search, lowStockBelow, limit, offset)
	if err != nil {
		return nil, err
	}

	return &dto.MedicineListResponse{
		Content:       converter.MedicinesToResponses(medicines),
		TotalElements: total,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (u *medicineUsecase) GetByID(ctx context.Context, id int64) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) Update(ctx context.Context, id int64, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	if req.Name != "" {
		medicine.Name = req.Name
	}
	if req.Category != "" {
		medicine.Category = req.Category
	}
	if req.Manufacturer != "" {
		medicine.Manufacturer = req.Manufacturer
	}
	if req.Price != nil {
		medicine.Price = *req.Price
	}
	if req.Stock != nil {
		medicine.Stock = *req.Stock
	}
	if req.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		medicine.ExpiryDate = &expiry
	}
	if req.Status != "" {
		medicine.Status = req.Status
	}

	if err := u.medicineRepo.Update(ctx, medicine); err != nil {
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) Delete(ctx context.Context, id int64) error {
	affectedRows, err := u.medicineRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affectedRows == 0 {
		return ErrMedicineNotFound
	}
	return nil
}
