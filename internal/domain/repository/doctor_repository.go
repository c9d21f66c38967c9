package repository

import (
	"context"

	"hospital-admin-console/internal/domain/entity"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindAll(ctx context.Context, search string, limit, offset int) ([]entity.Doctor, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
	Delete(ctx context.Context, id int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}
