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

type LabTestHandler struct {
	labTestUsecase usecase.LabTestUsecase
	validator      *validator.CustomValidator
}

func NewLabTestHandler(labTestUsecase usecase.LabTestUsecase, validator *validator.CustomValidator) *LabTestHandler {
	return &LabTestHandler{
		labTestUsecase: labTestUsecase,
		validator:      validator,
	}
}

func (h *LabTestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLabTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	labTest, err := h.labTestUsecase.Create(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.Error(w, http.StatusBadRequest, "Patient not found", nil)
			return
		}
		response.InternalServerError(w, "Failed to create lab test")
		return
	}

	response.Success(w, http.StatusCreated, "Lab test created successfully", labTest)
}

func (h *LabTestHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	patientID, _ := strconv.ParseInt(query.Get("patient_id"), 10, 64)
	status := query.Get("status")

	labTests, err := h.labTestUsecase.GetAll(r.Context(), patientID, status, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get lab tests")
		return
	}

	response.Success(w, http.StatusOK, "Lab tests retrieved successfully", labTests)
}

func (h *LabTestHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab test ID", nil)
		return
	}

	labTest, err := h.labTestUsecase.GetByID(r.Context(), id)
	if err != nil {
		if err == usecase.ErrLabTestNotFound {
			response.NotFound(w, "Lab test not found")
			return
		}
		response.InternalServerError(w, "Failed to get lab test")
		return
	}

	response.Success(w, http.StatusOK, "Lab test retrieved successfully", labTest)
}

func (h *LabTestHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab test ID", nil)
		return
	}

	var req dto.UpdateLabTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	labTest, err := h.labTestUsecase.Update(r.Context(), id, &req)
	if err != nil {
		if err == usecase.ErrLabTestNotFound {
			response.NotFound(w, "Lab test not found")
			return
		}
		response.InternalServerError(w, "Failed to update lab test")
		return
	}

	response.Success(w, http.StatusOK, "Lab test updated successfully", labTest)
}

func (h *LabTestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab test ID", nil)
		return
	}

	if err := h.labTestUsecase.Delete(r.Context(), id); err != nil {
		if err == usecase.ErrLabTestNotFound {
			response.NotFound(w, "Lab test not found")
			return
		}
		response.InternalServerError(w, "Failed to delete lab test")
		return
	}

	response.Success(w, http.StatusOK, "Lab test deleted successfully", nil)
}
