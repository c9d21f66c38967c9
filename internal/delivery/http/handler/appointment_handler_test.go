package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/usecase"
	"hospital-admin-console/pkg/validator"

	"github.com/gorilla/mux"
)

type mockAppointmentUsecase struct {
	createFn  func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	getAllFn  func(ctx context.Context, filter *dto.AppointmentFilterQuery, page, limit int) (*dto.AppointmentListResponse, error)
	getByIDFn func(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	updateFn  func(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	confirmFn func(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	cancelFn  func(ctx context.Context, id int64) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockAppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockAppointmentUsecase) GetAll(ctx context.Context, filter *dto.AppointmentFilterQuery, page, limit int) (*dto.AppointmentListResponse, error) {
	return m.getAllFn(ctx, filter, page, limit)
}

func (m *mockAppointmentUsecase) GetByID(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAppointmentUsecase) Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockAppointmentUsecase) Confirm(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	return m.confirmFn(ctx, id)
}

func (m *mockAppointmentUsecase) Cancel(ctx context.Context, id int64) error {
	return m.cancelFn(ctx, id)
}

func (m *mockAppointmentUsecase) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func TestAppointmentConfirmSuccess(t *testing.T) {
	mock := &mockAppointmentUsecase{
		confirmFn: func(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
			return &dto.AppointmentResponse{ID: id, Status: "confirmed"}, nil
		},
	}
	h := NewAppointmentHandler(mock, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/5/confirm", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()

	h.Confirm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAppointmentConfirmCancelledConflict(t *testing.T) {
	mock := &mockAppointmentUsecase{
		confirmFn: func(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrAppointmentAlreadyCancelled
		},
	}
	h := NewAppointmentHandler(mock, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/5/confirm", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()

	h.Confirm(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAppointmentCancelIsIdempotentConflict(t *testing.T) {
	calls := 0
	mock := &mockAppointmentUsecase{
		cancelFn: func(ctx context.Context, id int64) error {
			calls++
			if calls > 1 {
				return usecase.ErrAppointmentAlreadyCancelled
			}
			return nil
		},
	}
	h := NewAppointmentHandler(mock, validator.NewValidator())

	for i, want := range []int{http.StatusOK, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/5/cancel", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "5"})
		rec := httptest.NewRecorder()

		h.Cancel(rec, req)

		if rec.Code != want {
			t.Fatalf("call %d: expected %d, got %d", i+1, want, rec.Code)
		}
	}
}

func TestAppointmentGetAllBuildsFilter(t *testing.T) {
	var gotFilter *dto.AppointmentFilterQuery
	mock := &mockAppointmentUsecase{
		getAllFn: func(ctx context.Context, filter *dto.AppointmentFilterQuery, page, limit int) (*dto.AppointmentListResponse, error) {
			gotFilter = filter
			return &dto.AppointmentListResponse{Content: []dto.AppointmentResponse{}}, nil
		},
	}
	h := NewAppointmentHandler(mock, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/appointments?status=scheduled&doctor_id=3&start_at=2026-09-01&end_at=2026-09-30", nil)
	rec := httptest.NewRecorder()

	h.GetAll(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotFilter == nil {
		t.Fatal("filter not forwarded")
	}
	if gotFilter.Status != "scheduled" || gotFilter.DoctorID != 3 {
		t.Errorf("filter fields wrong: %+v", gotFilter)
	}
	if gotFilter.StartAt != "2026-09-01" || gotFilter.EndAt != "2026-09-30" {
		t.Errorf("date range wrong: %+v", gotFilter)
	}
}

func TestAppointmentDeleteNotFound(t *testing.T) {
	mock := &mockAppointmentUsecase{
		deleteFn: func(ctx context.Context, id int64) error {
			return usecase.ErrAppointmentNotFound
		},
	}
	h := NewAppointmentHandler(mock, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/404", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "404"})
	rec := httptest.NewRecorder()

	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
