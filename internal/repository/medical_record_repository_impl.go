package repository

import (
	"context"
	"errors"

	"hospital-admin-console/internal/domain/entity"
	domainRepo "hospital-admin-console/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalRecordRepository struct {
	db *gorm.DB
}

func NewMedicalRecordRepository(db *gorm.DB) domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *entity.MedicalRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *medicalRecordRepository) FindAll(ctx context.Context, patientID int64, limit, offset int) ([]entity.MedicalRecord, int64, error) {
	var records []entity.MedicalRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.MedicalRecord{})
	if patientID != 0 {
		query = query.Where("patient_id = ?", patientID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("recorded_at DESC").Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *medicalRecordRepository) FindByID(ctx context.Context, id int64) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) Update(ctx context.Context, record *entity.MedicalRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *medicalRecordRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.MedicalRecord{})
	return result.RowsAffected, result.Error
}
