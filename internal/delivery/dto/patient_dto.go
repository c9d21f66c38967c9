package dto

import (
	"time"

	"hospital-admin-console/internal/domain/entity"
)

// Request DTOs

type CreatePatientRequest struct {
	Name           string      `json:"name" validate:"required,min=2"`
	Email          string      `json:"email" validate:"omitempty,email"`
	Phone          string      `json:"phone" validate:"omitempty"`
	DateOfBirth    string      `json:"date_of_birth" validate:"omitempty"`
	Gender         string      `json:"gender" validate:"omitempty,oneof=M F"`
	BloodGroup     string      `json:"blood_group" validate:"omitempty"`
	Address        string      `json:"address" validate:"omitempty"`
	VitalSigns     entity.JSON `json:"vital_signs" validate:"omitempty"`
	MedicalHistory string      `json:"medical_history" validate:"omitempty"`
}

type UpdatePatientRequest struct {
	Name           string      `json:"name" validate:"omitempty,min=2"`
	Email          string      `json:"email" validate:"omitempty,email"`
	Phone          string      `json:"phone" validate:"omitempty"`
	BloodGroup     string      `json:"blood_group" validate:"omitempty"`
	Address        string      `json:"address" validate:"omitempty"`
	VitalSigns     entity.JSON `json:"vital_signs" validate:"omitempty"`
	MedicalHistory string      `json:"medical_history" validate:"omitempty"`
	Status         string      `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Response DTOs

type PatientResponse struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email,omitempty"`
	Phone          string      `json:"phone,omitempty"`
	DateOfBirth    *time.Time  `json:"date_of_birth,omitempty"`
	Gender         string      `json:"gender,omitempty"`
	BloodGroup     string      `json:"blood_group,omitempty"`
	Address        string      `json:"address,omitempty"`
	VitalSigns     entity.JSON `json:"vital_signs,omitempty"`
	MedicalHistory string      `json:"medical_history,omitempty"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type PatientListResponse struct {
	Content       []PatientResponse `json:"content"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}
