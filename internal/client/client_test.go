package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListDoctorsDecodesEnvelopeAndPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/doctors" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "2" || r.URL.Query().Get("limit") != "10" {
			t.Errorf("pagination params missing: %s", r.URL.RawQuery)
		}
		if r.URL.Query().Get("search") != "cardio" {
			t.Errorf("filter param missing: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Doctors retrieved successfully",
			"data": map[string]interface{}{
				"content": []map[string]interface{}{
					{"id": 1, "name": "Alice Wong", "email": "alice@hospital.test"},
					{"id": 2, "name": "Bob Reyes", "email": "bob@hospital.test"},
				},
				"totalElements": 12,
				"totalPages":    2,
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	page, err := c.ListDoctors(context.Background(), ListOptions{
		Page:    2,
		Limit:   10,
		Filters: map[string]string{"search": "cardio"},
	})
	if err != nil {
		t.Fatalf("ListDoctors: %v", err)
	}

	if len(page.Content) != 2 || page.Content[0].Name != "Alice Wong" {
		t.Fatalf("unexpected content: %+v", page.Content)
	}
	if page.TotalElements != 12 || page.TotalPages != 2 {
		t.Errorf("pagination metadata wrong: %d / %d", page.TotalElements, page.TotalPages)
	}
}

func TestFailureReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Doctor not found",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.DeleteDoctor(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "Doctor not found" {
		t.Errorf("unexpected error fields: %+v", apiErr)
	}
}

func TestUnsuccessfulEnvelopeFailsEvenOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "something went sideways",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.CancelInvoice(context.Background(), 1); err == nil {
		t.Fatal("success=false must surface as an error regardless of status code")
	}
}

func TestLoginStoresTokenForLaterRequests(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"message": "Login successful",
				"data": map[string]interface{}{
					"access_token":  "access-abc",
					"refresh_token": "refresh-def",
				},
			})
		case "/api/v1/doctors":
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"content": []interface{}{}},
			})
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	tokens, err := c.Login(context.Background(), "admin@hospital.test", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tokens.AccessToken != "access-abc" {
		t.Errorf("unexpected access token %q", tokens.AccessToken)
	}

	if _, err := c.ListDoctors(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("ListDoctors: %v", err)
	}
	if gotAuth != "Bearer access-abc" {
		t.Errorf("bearer header not sent, got %q", gotAuth)
	}
}

func TestConfirmAppointmentPostsAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/appointments/9/confirm" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": 9, "status": "confirmed"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	appt, err := c.ConfirmAppointment(context.Background(), 9)
	if err != nil {
		t.Fatalf("ConfirmAppointment: %v", err)
	}
	if appt.Status != "confirmed" {
		t.Errorf("unexpected status %q", appt.Status)
	}
}
