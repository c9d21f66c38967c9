package repository

import (
	"context"

	"hospital-admin-console/internal/domain/entity"
)

// Rooms and departments are read-only through the console CRUD surface.

type RoomRepository interface {
	FindAll(ctx context.Context, ward string, limit, offset int) ([]entity.Room, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Room, error)
}

type DepartmentRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]entity.Department, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Department, error)
}
