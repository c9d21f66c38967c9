package repository

import (
	"context"
	"errors"

	"hospital-admin-console/internal/domain/entity"
	domainRepo "hospital-admin-console/internal/domain/repository"

	"gorm.io/gorm"
)

type labTestRepository struct {
	db *gorm.DB
}

func NewLabTestRepository(db *gorm.DB) domainRepo.LabTestRepository {
	return &labTestRepository{db: db}
}

func (r *labTestRepository) Create(ctx context.Context, test *entity.LabTest) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *labTestRepository) FindAll(ctx context.Context, patientID int64, status string, limit, offset int) ([]entity.LabTest, int64, error) {
	var tests []entity.LabTest
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.LabTest{})
	if patientID != 0 {
		query = query.Where("patient_id = ?", patientID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("requested_at DESC").Find(&tests).Error; err != nil {
		return nil, 0, err
	}

	return tests, total, nil
}

func (r *labTestRepository) FindByID(ctx context.Context, id int64) (*entity.LabTest, error) {
	var test entity.LabTest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *labTestRepository) Update(ctx context.Context, test *entity.LabTest) error {
	return r.db.WithContext(ctx).Save(test).Error
}

func (r *labTestRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.LabTest{})
	return result.RowsAffected, result.Error
}
