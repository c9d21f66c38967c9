package repository

import (
	"context"

	"hospital-admin-console/internal/domain/entity"
)

type MedicalRecordRepository interface {
	Create(ctx context.Context, record *entity.MedicalRecord) error
	FindAll(ctx context.Context, patientID int64, limit, offset int) ([]entity.MedicalRecord, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.MedicalRecord, error)
	Update(ctx context.Context, record *entity.MedicalRecord) error
	Delete(ctx context.Context, id int64) (int64, error)
}
