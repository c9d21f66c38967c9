package repository

import (
	"context"

	"hospital-admin-console/internal/domain/entity"
)

type MedicineRepository interface {
	Create(ctx context.Context, medicine *entity.Medicine) error
	FindAll(ctx context.Context, search string, lowStockBelow int, limit, offset int) ([]entity.Medicine, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Medicine, error)
	Update(ctx context.Context, medicine *entity.Medicine) error
	Delete(ctx context.Context, id int64) (int64, error)
}
