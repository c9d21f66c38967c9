package dto

import "time"

// Request DTOs

type PrescriptionItemRequest struct {
	MedicineID int64  `json:"medicine_id" validate:"required"`
	Dosage     string `json:"dosage" validate:"required"`
	Frequency  string `json:"frequency" validate:"omitempty"`
	Duration   string `json:"duration" validate:"omitempty"`
}

type CreatePrescriptionRequest struct {
	PatientID     int64                     `json:"patient_id" validate:"required"`
	DoctorID      int64                     `json:"doctor_id" validate:"required"`
	AppointmentID *int64                    `json:"appointment_id" validate:"omitempty"`
	Items         []PrescriptionItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes         string                    `json:"notes" validate:"omitempty"`
}

type UpdatePrescriptionRequest struct {
	Items  []PrescriptionItemRequest `json:"items" validate:"omitempty,dive"`
	Notes  string                    `json:"notes" validate:"omitempty"`
	Status string                    `json:"status" validate:"omitempty,oneof=active completed cancelled"`
}

// Response DTOs

type PrescriptionItemResponse struct {
	MedicineID int64  `json:"medicine_id"`
	Dosage     string `json:"dosage"`
	Frequency  string `json:"frequency,omitempty"`
	Duration   string `json:"duration,omitempty"`
}

type PrescriptionResponse struct {
	ID            int64                      `json:"id"`
	PatientID     int64                      `json:"patient_id"`
	DoctorID      int64                      `json:"doctor_id"`
	AppointmentID *int64                     `json:"appointment_id,omitempty"`
	Items         []PrescriptionItemResponse `json:"items"`
	Notes         string                     `json:"notes,omitempty"`
	Status        string                     `json:"status"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

type PrescriptionListResponse struct {
	Content       []PrescriptionResponse `json:"content"`
	TotalElements int64                  `json:"totalElements"`
	TotalPages    int                    `json:"totalPages"`
}
