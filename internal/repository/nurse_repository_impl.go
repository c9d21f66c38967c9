package repository

import (
	"context"
	"errors"

	"hospital-admin-console/internal/domain/entity"
	domainRepo "hospital-admin-console/internal/domain/repository"

	"gorm.io/gorm"
)

type nurseRepository struct {
	db *gorm.DB
}

func NewNurseRepository(db *gorm.DB) domainRepo.NurseRepository {
	return &nurseRepository{db: db}
}

func (r *nurseRepository) Create(ctx context.Context, nurse *entity.Nurse) error {
	return r.db.WithContext(ctx).Create(nurse).Error
}

func (r *nurseRepository) FindAll(ctx context.Context, search string, limit, offset int) ([]entity.Nurse, int64, error) {
	var nurses []entity.Nurse
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Nurse{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR department ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&nurses).Error; err != nil {
		return nil, 0, err
	}

	return nurses, total, nil
}

func (r *nurseRepository) FindByID(ctx context.Context, id int64) (*entity.Nurse, error) {
	var nurse entity.Nurse
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&nurse).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &nurse, nil
}

func (r *nurseRepository) Update(ctx context.Context, nurse *entity.Nurse) error {
	return r.db.WithContext(ctx).Save(nurse).Error
}

func (r *nurseRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Nurse{})
	return result.RowsAffected, result.Error
}

func (r *nurseRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Nurse{}).Count(&total).Error
	return total, err
}
