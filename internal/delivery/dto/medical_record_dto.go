package dto

import "time"

// Request DTOs

type CreateMedicalRecordRequest struct {
	PatientID     int64   `json:"patient_id" validate:"required"`
	DoctorID      int64   `json:"doctor_id" validate:"required"`
	AppointmentID *int64  `json:"appointment_id" validate:"omitempty"`
	Diagnosis     string  `json:"diagnosis" validate:"omitempty"`
	Treatment     string  `json:"treatment" validate:"omitempty"`
	BloodPressure string  `json:"blood_pressure" validate:"omitempty"`
	Weight        float64 `json:"weight" validate:"omitempty,gte=0"`
	Notes         string  `json:"notes" validate:"omitempty"`
	RecordedAt    string  `json:"recorded_at" validate:"omitempty"`
}

type UpdateMedicalRecordRequest struct {
	Diagnosis     string   `json:"diagnosis" validate:"omitempty"`
	Treatment     string   `json:"treatment" validate:"omitempty"`
	BloodPressure string   `json:"blood_pressure" validate:"omitempty"`
	Weight        *float64 `json:"weight" validate:"omitempty,gte=0"`
	Notes         string   `json:"notes" validate:"omitempty"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID            int64     `json:"id"`
	PatientID     int64     `json:"patient_id"`
	DoctorID      int64     `json:"doctor_id"`
	AppointmentID *int64    `json:"appointment_id,omitempty"`
	Diagnosis     string    `json:"diagnosis,omitempty"`
	Treatment     string    `json:"treatment,omitempty"`
	BloodPressure string    `json:"blood_pressure,omitempty"`
	Weight        float64   `json:"weight,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	RecordedAt    time.Time `json:"recorded_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type MedicalRecordListResponse struct {
	Content       []MedicalRecordResponse `json:"content"`
	TotalElements int64                   `json:"totalElements"`
	TotalPages    int                     `json:"totalPages"`
}
