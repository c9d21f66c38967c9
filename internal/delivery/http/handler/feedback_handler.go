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

type FeedbackHandler struct {
	feedbackUsecase usecase.FeedbackUsecase
	validator       *validator.CustomValidator
}

func NewFeedbackHandler(feedbackUsecase usecase.FeedbackUsecase, validator *validator.CustomValidator) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUsecase: feedbackUsecase,
		validator:       validator,
	}
}

// Create is public, patients submit feedback without an account.
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	feedback, err := h.feedbackUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to submit feedback")
		return
	}

	response.Success(w, http.StatusCreated, "Feedback submitted successfully", feedback)
}

func (h *FeedbackHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	status := query.Get("status")

	feedbacks, err := h.feedbackUsecase.GetAll(r.Context(), status, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get feedback")
		return
	}

	response.Success(w, http.StatusOK, "Feedback retrieved successfully", feedbacks)
}

func (h *FeedbackHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid feedback ID", nil)
		return
	}

	feedback, err := h.feedbackUsecase.GetByID(r.Context(), id)
	if err != nil {
		if err == usecase.ErrFeedbackNotFound {
			response.NotFound(w, "Feedback not found")
			return
		}
		response.InternalServerError(w, "Failed to get feedback")
		return
	}

	response.Success(w, http.StatusOK, "Feedback retrieved successfully", feedback)
}

func (h *FeedbackHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid feedback ID", nil)
		return
	}

	var req dto.UpdateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	feedback, err := h.feedbackUsecase.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		if err == usecase.ErrFeedbackNotFound {
			response.NotFound(w, "Feedback not found")
			return
		}
		response.InternalServerError(w, "Failed to update feedback")
		return
	}

	response.Success(w, http.StatusOK, "Feedback updated successfully", feedback)
}

func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid feedback ID", nil)
		return
	}

	if err := h.feedbackUsecase.Delete(r.Context(), id); err != nil {
		if err == usecase.ErrFeedbackNotFound {
			response.NotFound(w, "Feedback not found")
			return
		}
		response.InternalServerError(w, "Failed to delete feedback")
		return
	}

	response.Success(w, http.StatusOK, "Feedback deleted successfully", nil)
}
