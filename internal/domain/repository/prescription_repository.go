package repository

import (
	"context"

	"hospital-admin-console/internal/domain/entity"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *entity.Prescription) error
	FindAll(ctx context.Context, patientID int64, limit, offset int) ([]entity.Prescription, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Prescription, error)
	Update(ctx context.Context, prescription *entity.Prescription) error
	Delete(ctx context.Context, id int64) (int64, error)
}
