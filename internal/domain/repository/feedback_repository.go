package repository

import (
	"context"

	"hospital-admin-console/internal/domain/entity"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindAll(ctx context.Context, status string, limit, offset int) ([]entity.Feedback, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Feedback, error)
	Update(ctx context.Context, feedback *entity.Feedback) error
	Delete(ctx context.Context, id int64) (int64, error)
}
