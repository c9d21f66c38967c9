package converter

import (
	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/domain/entity"
)

// MedicineToResponse converts a Medicine entity to MedicineResponse DTO
func MedicineToResponse(medicine *entity.Medicine) *dto.MedicineResponse {
	if medicine == nil {
		return nil
	}

	return &dto.MedicineResponse{
		ID:           medicine.ID,
		Name:         medicine.Name,
		Category:     medicine.Category,
		Manufacturer: medicine.Manufacturer,
		Price:        medicine.Price,
		Stock:        medicine.Stock,
		ExpiryDate:   medicine.ExpiryDate,
		Status:       medicine.Status,
		CreatedAt:    medicine.CreatedAt,
		UpdatedAt:    medicine.UpdatedAt,
	}
}

// MedicinesToResponses converts a slice of Medicine entities to response DTOs
func MedicinesToResponses(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, len(medicines))
	for i := range medicines {
		responses[i] = *MedicineToResponse(&medicines[i])
	}
	return responses
}
