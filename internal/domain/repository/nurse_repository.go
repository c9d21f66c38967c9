package repository

import (
	"context"

	"hospital-admin-console/internal/domain/entity"
)

type NurseRepository interface {
	Create(ctx context.Context, nurse *entity.Nurse) error
	FindAll(ctx context.Context, search string, limit, offset int) ([]entity.Nurse, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Nurse, error)
	Update(ctx context.Context, nurse *entity.Nurse) error
	Delete(ctx context.Context, id int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}
