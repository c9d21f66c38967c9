package repository

import (
	"context"

	"hospital-admin-console/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindAll(ctx context.Context, filter entity.AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id int64) (int64, error)
	// Cancel atomically cancels an appointment ONLY if it is not already
	// cancelled. Returns affected rows: 1 = success, 0 = already cancelled.
	Cancel(ctx context.Context, id int64) (int64, error)
	CountByStatus(ctx context.Context) (map[entity.AppointmentStatus]int64, error)
	Count(ctx context.Context) (int64, error)
}
