package converter

import (
	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/domain/entity"
)

// InvoiceToResponse converts an Invoice entity to InvoiceResponse DTO
func InvoiceToResponse(invoice *entity.Invoice) *dto.InvoiceResponse {
	if invoice == nil {
		return nil
	}

	lines := make([]dto.InvoiceLineResponse, len(invoice.Lines))
	for i, line := range invoice.Lines {
		lines[i] = dto.InvoiceLineResponse{
			Description: line.Description,
			Amount:      line.Amount,
		}
	}

	return &dto.InvoiceResponse{
		ID:          invoice.ID,
		PatientID:   invoice.PatientID,
		Lines:       lines,
		TotalAmount: invoice.TotalAmount,
		Status:      string(invoice.Status),
		IssuedAt:    invoice.IssuedAt,
		PaidAt:      invoice.PaidAt,
		UpdatedAt:   invoice.UpdatedAt,
	}
}

// InvoicesToResponses converts a slice of Invoice entities to response DTOs
func InvoicesToResponses(invoices []entity.Invoice) []dto.InvoiceResponse {
	responses := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = *InvoiceToResponse(&invoices[i])
	}
	return responses
}

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:        payment.ID,
		InvoiceID: payment.InvoiceID,
		Amount:    payment.Amount,
		Method:    payment.Method,
		Reference: payment.Reference,
		PaidAt:    payment.PaidAt,
	}
}

// PaymentsToResponses converts a slice of Payment entities to response DTOs
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *PaymentToResponse(&payments[i])
	}
	return responses
}

// ServiceFeeToResponse converts a ServiceFee entity to ServiceFeeResponse DTO
func ServiceFeeToResponse(fee *entity.ServiceFee) *dto.ServiceFeeResponse {
	if fee == nil {
		return nil
	}

	return &dto.ServiceFeeResponse{
		ID:          fee.ID,
		ServiceName: fee.ServiceName,
		Category:    fee.Category,
		Fee:         fee.Fee,
		UpdatedAt:   fee.UpdatedAt,
	}
}

// ServiceFeesToResponses converts a slice of ServiceFee entities to response DTOs
func ServiceFeesToResponses(fees []entity.ServiceFee) []dto.ServiceFeeResponse {
	responses := make([]dto.ServiceFeeResponse, len(fees))
	for i := range fees {
		responses[i] = *ServiceFeeToResponse(&fees[i])
	}
	return responses
}
