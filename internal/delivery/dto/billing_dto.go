package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type InvoiceLineRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
}

type CreateInvoiceRequest struct {
	PatientID int64                `json:"patient_id" validate:"required"`
	Lines     []InvoiceLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type PayInvoiceRequest struct {
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Method    string          `json:"method" validate:"required,oneof=cash card transfer insurance"`
	Reference string          `json:"reference" validate:"omitempty"`
}

type UpsertServiceFeeRequest struct {
	ServiceName string          `json:"service_name" validate:"required,min=2"`
	Category    string          `json:"category" validate:"omitempty"`
	Fee         decimal.Decimal `json:"fee" validate:"required"`
}

// Response DTOs

type InvoiceLineResponse struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type InvoiceResponse struct {
	ID          int64                 `json:"id"`
	PatientID   int64                 `json:"patient_id"`
	Lines       []InvoiceLineResponse `json:"lines"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	Status      string                `json:"status"`
	IssuedAt    time.Time             `json:"issued_at"`
	PaidAt      *time.Time            `json:"paid_at,omitempty"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

type InvoiceListResponse struct {
	Content       []InvoiceResponse `json:"content"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}

type PaymentResponse struct {
	ID        int64           `json:"id"`
	InvoiceID int64           `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method,omitempty"`
	Reference string          `json:"reference,omitempty"`
	PaidAt    time.Time       `json:"paid_at"`
}

type PaymentListResponse struct {
	Content       []PaymentResponse `json:"content"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}

type ServiceFeeResponse struct {
	ID          int64           `json:"id"`
	ServiceName string          `json:"service_name"`
	Category    string          `json:"category,omitempty"`
	Fee         decimal.Decimal `json:"fee"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
