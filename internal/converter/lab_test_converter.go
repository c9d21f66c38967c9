package converter

import (
	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/domain/entity"
)

// LabTestToResponse converts a LabTest entity to LabTestResponse DTO
func LabTestToResponse(test *entity.LabTest) *dto.LabTestResponse {
	if test == nil {
		return nil
	}

	return &dto.LabTestResponse{
		ID:          test.ID,
		PatientID:   test.PatientID,
		DoctorID:    test.DoctorID,
		TestName:    test.TestName,
		Category:    test.Category,
		Status:      string(test.Status),
		Result:      test.Result,
		Price:       test.Price,
		RequestedAt: test.RequestedAt,
		CompletedAt: test.CompletedAt,
		UpdatedAt:   test.UpdatedAt,
	}
}

// LabTestsToResponses converts a slice of LabTest entities to response DTOs
func LabTestsToResponses(tests []entity.LabTest) []dto.LabTestResponse {
	responses := make([]dto.LabTestResponse, len(tests))
	for i := range tests {
		responses[i] = *LabTestToResponse(&tests[i])
	}
	return responses
}
