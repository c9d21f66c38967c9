package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID int64  `json:"patient_id" validate:"required"`
	DoctorID  int64  `json:"doctor_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Type      string `json:"type" validate:"omitempty"`
	Notes     string `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	Date   string `json:"date" validate:"omitempty"`
	Time   string `json:"time" validate:"omitempty"`
	Type   string `json:"type" validate:"omitempty"`
	Notes  string `json:"notes" validate:"omitempty"`
	Status string `json:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled"`
}

// AppointmentFilterQuery carries the list filters parsed from query params
type AppointmentFilterQuery struct {
	StartAt    string `json:"start_at" validate:"omitempty"`
	EndAt      string `json:"end_at" validate:"omitempty"`
	DoctorID   int64  `json:"doctor_id" validate:"omitempty"`
	PatientID  int64  `json:"patient_id" validate:"omitempty"`
	Status     string `json:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled"`
	DoctorName string `json:"doctor_name" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        int64     `json:"id"`
	PatientID int64     `json:"patient_id"`
	DoctorID  int64     `json:"doctor_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Type      string    `json:"type,omitempty"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Content       []AppointmentResponse `json:"content"`
	TotalElements int64                 `json:"totalElements"`
	TotalPages    int                   `json:"totalPages"`
}
