package repository

import (
	"context"
	"errors"

	"hospital-admin-console/internal/domain/entity"
	domainRepo "hospital-admin-console/internal/domain/repository"

	"gorm.io/gorm"
)

type prescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) domainRepo.PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *entity.Prescription) error {
	return r.db.WithContext(ctx).Create(prescription).Error
}

func (r *prescriptionRepository) FindAll(ctx context.Context, patientID int64, limit, offset int) ([]entity.Prescription, int64, error) {
	var prescriptions []entity.Prescription
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Prescription{})
	if patientID != 0 {
		query = query.Where("patient_id = ?", patientID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&prescriptions).Error; err != nil {
		return nil, 0, err
	}

	return prescriptions, total, nil
}

func (r *prescriptionRepository) FindByID(ctx context.Context, id int64) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) Update(ctx context.Context, prescription *entity.Prescription) error {
	return r.db.WithContext(ctx).Save(prescription).Error
}

func (r *prescriptionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Prescription{})
	return result.RowsAffected, result.Error
}
