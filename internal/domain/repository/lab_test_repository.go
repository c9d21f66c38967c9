package repository

import (
	"context"

	"hospital-admin-console/internal/domain/entity"
)

type LabTestRepository interface {
	Create(ctx context.Context, test *entity.LabTest) error
	FindAll(ctx context.Context, patientID int64, status string, limit, offset int) ([]entity.LabTest, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.LabTest, error)
	Update(ctx context.Context, test *entity.LabTest) error
	Delete(ctx context.Context, id int64) (int64, error)
}
