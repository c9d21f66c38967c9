package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateMedicineRequest struct {
	Name         string          `json:"name" validate:"required,min=2"`
	Category     string          `json:"category" validate:"omitempty"`
	Manufacturer string          `json:"manufacturer" validate:"omitempty"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	Stock        int             `json:"stock" validate:"omitempty,gte=0"`
	ExpiryDate   string          `json:"expiry_date" validate:"omitempty"`
}

type UpdateMedicineRequest struct {
	Name         string           `json:"name" validate:"omitempty,min=2"`
	Category     string           `json:"category" validate:"omitempty"`
	Manufacturer string           `json:"manufacturer" validate:"omitempty"`
	Price        *decimal.Decimal `json:"price" validate:"omitempty"`
	Stock        *int             `json:"stock" validate:"omitempty,gte=0"`
	ExpiryDate   string           `json:"expiry_date" validate:"omitempty"`
	Status       string           `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Response DTOs

type MedicineResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category,omitempty"`
	Manufacturer string          `json:"manufacturer,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type MedicineListResponse struct {
	Content       []MedicineResponse `json:"content"`
	TotalElements int64              `json:"totalElements"`
	TotalPages    int                `json:"totalPages"`
}
