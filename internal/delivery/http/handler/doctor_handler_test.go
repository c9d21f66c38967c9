package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/usecase"
	"hospital-admin-console/pkg/validator"

	"github.com/gorilla/mux"
)

type mockDoctorUsecase struct {
	createFn  func(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	getAllFn  func(ctx context.Context, search string, page, limit int) (*dto.DoctorListResponse, error)
	getByIDFn func(ctx context.Context, id int64) (*dto.DoctorResponse, error)
	updateFn  func(ctx context.Context, id int64, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockDoctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockDoctorUsecase) GetAll(ctx context.Context, search string, page, limit int) (*dto.DoctorListResponse, error) {
	return m.getAllFn(ctx, search, page, limit)
}

func (m *mockDoctorUsecase) GetByID(ctx context.Context, id int64) (*dto.DoctorResponse, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockDoctorUsecase) Update(ctx context.Context, id int64, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockDoctorUsecase) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("response is not a valid envelope: %v", err)
	}
	return env
}

func TestDoctorCreateSuccess(t *testing.T) {
	mock := &mockDoctorUsecase{
		createFn: func(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
			return &dto.DoctorResponse{ID: 1, Name: req.Name, Email: req.Email, Status: "active"}, nil
		},
	}
	h := NewDoctorHandler(mock, validator.NewValidator())

	body, _ := json.Marshal(dto.CreateDoctorRequest{Name: "Alice Wong", Email: "alice@hospital.test"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Error("expected success envelope")
	}

	var doctor dto.DoctorResponse
	json.Unmarshal(env.Data, &doctor)
	if doctor.ID != 1 || doctor.Status != "active" {
		t.Errorf("unexpected payload: %+v", doctor)
	}
}

func TestDoctorCreateValidationFailure(t *testing.T) {
	called := false
	mock := &mockDoctorUsecase{
		createFn: func(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
			called = true
			return nil, nil
		},
	}
	h := NewDoctorHandler(mock, validator.NewValidator())

	body, _ := json.Marshal(dto.CreateDoctorRequest{Name: "A", Email: "not-an-email"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("usecase must not run on validation failure")
	}
}

func TestDoctorCreateDuplicateEmailConflict(t *testing.T) {
	mock := &mockDoctorUsecase{
		createFn: func(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
			return nil, usecase.ErrDoctorEmailExists
		},
	}
	h := NewDoctorHandler(mock, validator.NewValidator())

	body, _ := json.Marshal(dto.CreateDoctorRequest{Name: "Alice Wong", Email: "alice@hospital.test"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestDoctorGetAllPassesQueryParams(t *testing.T) {
	var gotSearch string
	var gotPage, gotLimit int
	mock := &mockDoctorUsecase{
		getAllFn: func(ctx context.Context, search string, page, limit int) (*dto.DoctorListResponse, error) {
			gotSearch, gotPage, gotLimit = search, page, limit
			return &dto.DoctorListResponse{TotalElements: 0, TotalPages: 0, Content: []dto.DoctorResponse{}}, nil
		},
	}
	h := NewDoctorHandler(mock, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors?search=cardio&page=3&limit=25", nil)
	rec := httptest.NewRecorder()

	h.GetAll(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotSearch != "cardio" || gotPage != 3 || gotLimit != 25 {
		t.Errorf("query params not forwarded: %q %d %d", gotSearch, gotPage, gotLimit)
	}
}

func TestDoctorGetByIDNotFound(t *testing.T) {
	mock := &mockDoctorUsecase{
		getByIDFn: func(ctx context.Context, id int64) (*dto.DoctorResponse, error) {
			return nil, usecase.ErrDoctorNotFound
		},
	}
	h := NewDoctorHandler(mock, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/99", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "99"})
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Success {
		t.Error("error envelope must report success=false")
	}
}

func TestDoctorDeleteInvalidID(t *testing.T) {
	h := NewDoctorHandler(&mockDoctorUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/doctors/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
