package handler

import (
	"net/http"
	"strconv"

	"hospital-admin-console/internal/usecase"
	"hospital-admin-console/pkg/response"

	"github.com/gorilla/mux"
)

type FacilityHandler struct {
	facilityUsecase usecase.FacilityUsecase
}

func NewFacilityHandler(facilityUsecase usecase.FacilityUsecase) *FacilityHandler {
	return &FacilityHandler{facilityUsecase: facilityUsecase}
}

func (h *FacilityHandler) GetAllRooms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	ward := query.Get("ward")

	rooms, err := h.facilityUsecase.GetAllRooms(r.Context(), ward, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get rooms")
		return
	}

	response.Success(w, http.StatusOK, "Rooms retrieved successfully", rooms)
}

func (h *FacilityHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	room, err := h.facilityUsecase.GetRoom(r.Context(), id)
	if err != nil {
		if err == usecase.ErrRoomNotFound {
			response.NotFound(w, "Room not found")
			return
		}
		response.InternalServerError(w, "Failed to get room")
		return
	}

	response.Success(w, http.StatusOK, "Room retrieved successfully", room)
}

func (h *FacilityHandler) GetAllDepartments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	departments, err := h.facilityUsecase.GetAllDepartments(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get departments")
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

func (h *FacilityHandler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid department ID", nil)
		return
	}

	department, err := h.facilityUsecase.GetDepartment(r.Context(), id)
	if err != nil {
		if err == usecase.ErrDepartmentNotFound {
			response.NotFound(w, "Department not found")
			return
		}
		response.InternalServerError(w, "Failed to get department")
		return
	}

	response.Success(w, http.StatusOK, "Department retrieved successfully", department)
}
