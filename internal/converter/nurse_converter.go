package converter

import (
	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/domain/entity"
)

// NurseToResponse converts a Nurse entity to NurseResponse DTO
func NurseToResponse(nurse *entity.Nurse) *dto.NurseResponse {
	if nurse == nil {
		return nil
	}

	return &dto.NurseResponse{
		ID:         nurse.ID,
		Name:       nurse.Name,
		Email:      nurse.Email,
		Phone:      nurse.Phone,
		Department: nurse.Department,
		Shift:      nurse.Shift,
		Status:     nurse.Status,
		CreatedAt:  nurse.CreatedAt,
		UpdatedAt:  nurse.UpdatedAt,
	}
}

// NursesToResponses converts a slice of Nurse entities to response DTOs
func NursesToResponses(nurses []entity.Nurse) []dto.NurseResponse {
	responses := make([]dto.NurseResponse, len(nurses))
	for i := range nurses {
		responses[i] = *NurseToResponse(&nurses[i])
	}
	return responses
}
