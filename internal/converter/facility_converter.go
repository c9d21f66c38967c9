package converter

import (
	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/domain/entity"
)

// RoomToResponse converts a Room entity to RoomResponse DTO
func RoomToResponse(room *entity.Room) *dto.RoomResponse {
	if room == nil {
		return nil
	}

	return &dto.RoomResponse{
		ID:        room.ID,
		Number:    room.Number,
		Ward:      room.Ward,
		Type:      room.Type,
		Capacity:  room.Capacity,
		Status:    room.Status,
		UpdatedAt: room.UpdatedAt,
	}
}

// RoomsToResponses converts a slice of Room entities to response DTOs
func RoomsToResponses(rooms []entity.Room) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = *RoomToResponse(&rooms[i])
	}
	return responses
}

// DepartmentToResponse converts a Department entity to DepartmentResponse DTO
func DepartmentToResponse(department *entity.Department) *dto.DepartmentResponse {
	if department == nil {
		return nil
	}

	return &dto.DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
		Floor:       department.Floor,
		UpdatedAt:   department.UpdatedAt,
	}
}

// DepartmentsToResponses converts a slice of Department entities to response DTOs
func DepartmentsToResponses(departments []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = *DepartmentToResponse(&departments[i])
	}
	return responses
}
