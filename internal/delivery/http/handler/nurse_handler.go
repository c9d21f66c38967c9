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

type NurseHandler struct {
	nurseUsecase usecase.NurseUsecase
	validator    *validator.CustomValidator
}

func NewNurseHandler(nurseUsecase usecase.NurseUsecase, validator *validator.CustomValidator) *NurseHandler {
	return &NurseHandler{
		nurseUsecase: nurseUsecase,
		validator:    validator,
	}
}

func (h *NurseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNurseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	nurse, err := h.nurseUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrNurseEmailExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create nurse")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Nurse created successfully", nurse)
}

func (h *NurseHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	search := r.URL.Query().Get("search")

	nurses, err := h.nurseUsecase.GetAll(r.Context(), search, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get nurses")
		return
	}

	response.Success(w, http.StatusOK, "Nurses retrieved successfully", nurses)
}

func (h *NurseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid nurse ID", nil)
		return
	}

	nurse, err := h.nurseUsecase.GetByID(r.Context(), id)
	if err != nil {
		if err == usecase.ErrNurseNotFound {
			response.NotFound(w, "Nurse not found")
			return
		}
		response.InternalServerError(w, "Failed to get nurse")
		return
	}

	response.Success(w, http.StatusOK, "Nurse retrieved successfully", nurse)
}

func (h *NurseHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid nurse ID", nil)
		return
	}

	var req dto.UpdateNurseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	nurse, err := h.nurseUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrNurseNotFound:
			response.NotFound(w, "Nurse not found")
		case usecase.ErrNurseEmailExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		default:
			response.InternalServerError(w, "Failed to update nurse")
		}
		return
	}

	response.Success(w, http.StatusOK, "Nurse updated successfully", nurse)
}

func (h *NurseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid nurse ID", nil)
		return
	}

	if err := h.nurseUsecase.Delete(r.Context(), id); err != nil {
		if err == usecase.ErrNurseNotFound {
			response.NotFound(w, "Nurse not found")
			return
		}
		response.InternalServerError(w, "Failed to delete nurse")
		return
	}

	response.Success(w, http.StatusOK, "Nurse deleted successfully", nil)
}
