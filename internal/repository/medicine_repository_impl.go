package repository

import (
	"context"
	"errors"

	"hospital-admin-console/internal/domain/entity"
	domainRepo "hospital-admin-console/internal/domain/repository"

	"gorm.io/gorm"
)

type medicineRepository struct {
	db *gorm.DB
}

func NewMedicineRepository(db *gorm.DB) domainRepo.MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	return r.db.WithContext(ctx).Create(medicine).Error
}

func (r *medicineRepository) FindAll(ctx context.Context, search string, lowStockBelow int, limit, offset int) ([]entity.Medicine, int64, error) {
	var medicines []entity.Medicine
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Medicine{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR category ILIKE ? OR manufacturer ILIKE ?", pattern, pattern, pattern)
	}
	if lowStockBelow > 0 {
		query = query.Where("stock < ?", lowStockBelow)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("name ASC").Find(&medicines).Error; err != nil {
		return nil, 0, err
	}

	return medicines, total, nil
}

func (r *medicineRepository) FindByID(ctx context.Context, id int64) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	return r.db.WithContext(ctx).Save(medicine).Error
}

func (r *medicineRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Medicine{})
	return result.RowsAffected, result.Error
}
