package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/usecase"
	"hospital-admin-console/pkg/response"
	"hospital-admin-console/pkg/validator"

	"github.com/gorilla/mux"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

func (h *BillingHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	invoice, err := h.billingUsecase.CreateInvoice(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.Error(w, http.StatusBadRequest, "Patient not found", nil)
			return
		}
		response.InternalServerError(w, "Failed to create invoice")
		return
	}

	response.Success(w, http.StatusCreated, "Invoice created successfully", invoice)
}

func (h *BillingHandler) GetAllInvoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	patientID, _ := strconv.ParseInt(query.Get("patient_id"), 10, 64)
	status := query.Get("status")

	invoices, err := h.billingUsecase.GetAllInvoices(r.Context(), patientID, status, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get invoices")
		return
	}

	response.Success(w, http.StatusOK, "Invoices retrieved successfully", invoices)
}

func (h *BillingHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}

	invoice, err := h.billingUsecase.GetInvoice(r.Context(), id)
	if err != nil {
		if err == usecase.ErrInvoiceNotFound {
			response.NotFound(w, "Invoice not found")
			return
		}
		response.InternalServerError(w, "Failed to get invoice")
		return
	}

	response.Success(w, http.StatusOK, "Invoice retrieved successfully", invoice)
}

func (h *BillingHandler) PayInvoice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}

	var req dto.PayInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	invoice, err := h.billingUsecase.PayInvoice(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvoiceNotFound:
			response.NotFound(w, "Invoice not found")
		case usecase.ErrInvoiceAlreadyPaid:
			response.Error(w, http.StatusConflict, "Invoice is already paid", nil)
		case usecase.ErrInvoiceCancelled:
			response.Error(w, http.StatusConflict, "Invoice is cancelled", nil)
		case usecase.ErrPaymentAmountMismatch:
			response.Error(w, http.StatusBadRequest, "Payment amount does not match invoice total", nil)
		default:
			response.InternalServerError(w, "Failed to pay invoice")
		}
		return
	}

	response.Success(w, http.StatusOK, "Invoice paid successfully", invoice)
}

func (h *BillingHandler) CancelInvoice(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}

	if err := h.billingUsecase.CancelInvoice(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrInvoiceNotFound:
			response.NotFound(w, "Invoice not found")
		case usecase.ErrInvoiceAlreadyPaid:
			response.Error(w, http.StatusConflict, "Invoice is already paid", nil)
		default:
			response.InternalServerError(w, "Failed to cancel invoice")
		}
		return
	}

	response.Success(w, http.StatusOK, "Invoice cancelled successfully", nil)
}

func (h *BillingHandler) GetPaymentHistory(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	payments, err := h.billingUsecase.GetPaymentHistory(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get payment history")
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}

func (h *BillingHandler) GetServiceFees(w http.ResponseWriter, r *http.Request) {
	fees, err := h.billingUsecase.GetServiceFees(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get service fees")
		return
	}

	response.Success(w, http.StatusOK, "Service fees retrieved successfully", fees)
}

func (h *BillingHandler) UpsertServiceFee(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertServiceFeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	fee, err := h.billingUsecase.UpsertServiceFee(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save service fee")
		return
	}

	response.Success(w, http.StatusOK, "Service fee saved successfully", fee)
}
