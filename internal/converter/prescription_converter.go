package converter

import (
	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/domain/entity"
)

// PrescriptionToResponse converts a Prescription entity to response DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	items := make([]dto.PrescriptionItemResponse, len(prescription.Items))
	for i, item := range prescription.Items {
		items[i] = dto.PrescriptionItemResponse{
			MedicineID: item.MedicineID,
			Dosage:     item.Dosage,
			Frequency:  item.Frequency,
			Duration:   item.Duration,
		}
	}

	return &dto.PrescriptionResponse{
		ID:            prescription.ID,
		PatientID:     prescription.PatientID,
		DoctorID:      prescription.DoctorID,
		AppointmentID: prescription.AppointmentID,
		Items:         items,
		Notes:         prescription.Notes,
		Status:        prescription.Status,
		CreatedAt:     prescription.CreatedAt,
		UpdatedAt:     prescription.UpdatedAt,
	}
}

// PrescriptionsToResponses converts a slice of Prescription entities to response DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescriptions[i])
	}
	return responses
}

// PrescriptionItemsFromRequests converts request lines into the JSONB entity form
func PrescriptionItemsFromRequests(items []dto.PrescriptionItemRequest) entity.PrescriptionItems {
	out := make(entity.PrescriptionItems, len(items))
	for i, item := range items {
		out[i] = entity.PrescriptionItem{
			MedicineID: item.MedicineID,
			Dosage:     item.Dosage,
			Frequency:  item.Frequency,
			Duration:   item.Duration,
		}
	}
	return out
}
