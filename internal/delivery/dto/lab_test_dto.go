package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateLabTestRequest struct {
	PatientID int64           `json:"patient_id" validate:"required"`
	DoctorID  int64           `json:"doctor_id" validate:"required"`
	TestName  string          `json:"test_name" validate:"required,min=2"`
	Category  string          `json:"category" validate:"omitempty"`
	Price     decimal.Decimal `json:"price" validate:"omitempty"`
}

type UpdateLabTestRequest struct {
	TestName string `json:"test_name" validate:"omitempty,min=2"`
	Category string `json:"category" validate:"omitempty"`
	Status   string `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Result   string `json:"result" validate:"omitempty"`
}

// Response DTOs

type LabTestResponse struct {
	ID          int64           `json:"id"`
	PatientID   int64           `json:"patient_id"`
	DoctorID    int64           `json:"doctor_id"`
	TestName    string          `json:"test_name"`
	Category    string          `json:"category,omitempty"`
	Status      string          `json:"status"`
	Result      string          `json:"result,omitempty"`
	Price       decimal.Decimal `json:"price"`
	RequestedAt time.Time       `json:"requested_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type LabTestListResponse struct {
	Content       []LabTestResponse `json:"content"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}
