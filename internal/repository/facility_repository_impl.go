package repository

import (
	"context"
	"errors"

	"hospital-admin-console/internal/domain/entity"
	domainRepo "hospital-admin-console/internal/domain/repository"

	"gorm.io/gorm"
)

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) domainRepo.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) FindAll(ctx context.Context, ward string, limit, offset int) ([]entity.Room, int64, error) {
	var rooms []entity.Room
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Room{})
	if ward != "" {
		query = query.Where("ward = ?", ward)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Order("number ASC").Find(&rooms).Error; err != nil {
		return nil, 0, err
	}

	return rooms, total, nil
}

func (r *roomRepository) FindByID(ctx context.Context, id int64) (*entity.Room, error) {
	var room entity.Room
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) domainRepo.DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.Department, int64, error) {
	var departments []entity.Department
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Department{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Order("name ASC").Find(&departments).Error; err != nil {
		return nil, 0, err
	}

	return departments, total, nil
}

func (r *departmentRepository) FindByID(ctx context.Context, id int64) (*entity.Department, error) {
	var department entity.Department
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}
