package usecase

import (
	"context"
	"errors"

	"hospital-admin-console/internal/converter"
	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/domain/repository"
)

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrDepartmentNotFound = errors.New("department not found")
)

type FacilityUsecase interface {
	GetAllRooms(ctx context.Context, ward string, page, limit int) (*dto.RoomListResponse, error)
	GetRoom(ctx context.Context, id int64) (*dto.RoomResponse, error)
	GetAllDepartments(ctx context.Context, page, limit int) (*dto.DepartmentListResponse, error)
	GetDepartment(ctx context.Context, id int64) (*dto.DepartmentResponse, error)
}

type facilityUsecase struct {
	roomRepo       repository.RoomRepository
	departmentRepo repository.DepartmentRepository
}

func NewFacilityUsecase(
	roomRepo repository.RoomRepository,
	departmentRepo repository.DepartmentRepository,
) FacilityUsecase {
	return &facilityUsecase{
		roomRepo:       roomRepo,
		departmentRepo: departmentRepo,
	}
}

func (u *facilityUsecase) GetAllRooms(ctx context.Context, ward string, page, limit int) (*dto.RoomListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	rooms, total, err := u.roomRepo.FindAll(ctx, ward, limit, offset)
	if err != nil {
		return nil, err
	}

	return &dto.RoomListResponse{
		Content:       converter.RoomsToResponses(rooms),
		TotalElements: total,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (u *facilityUsecase) GetRoom(ctx context.Context, id int64) (*dto.RoomResponse, error) {
	room, err := u.roomRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	return converter.RoomToResponse(room), nil
}

func (u *facilityUsecase) GetAllDepartments(ctx context.Context, page, limit int) (*dto.DepartmentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	departments, total, err := u.departmentRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return &dto.DepartmentListResponse{
		Content:       converter.DepartmentsToResponses(departments),
		TotalElements: total,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (u *facilityUsecase) GetDepartment(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	department, err := u.departmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	return converter.DepartmentToResponse(department), nil
}
