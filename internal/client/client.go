package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"hospital-admin-console/internal/delivery/dto"
)

// APIError carries the HTTP status and server message of a failed call.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.Message)
}

// Page is the list payload shape every list endpoint returns inside the
// response envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// envelope mirrors pkg/response.Response on the consuming side.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ListOptions are the common list query params. Filters carries
// resource-specific params (search, status, doctor_id, ...).
type ListOptions struct {
	Page    int
	Limit   int
	Filters map[string]string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	for k, v := range o.Filters {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}

// Client is a typed REST client for the hospital admin API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken sets the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	u := c.baseURL + "/api/v1" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// Auth

func (c *Client) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	var tokens dto.TokenResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &tokens); err != nil {
		return nil, err
	}
	c.token = tokens.AccessToken
	return &tokens, nil
}

func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	req := dto.RefreshTokenRequest{RefreshToken: refreshToken}
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, req, nil)
}

// Doctors

func (c *Client) ListDoctors(ctx context.Context, opts ListOptions) (*Page[dto.DoctorResponse], error) {
	var page Page[dto.DoctorResponse]
	if err := c.do(ctx, http.MethodGet, "/doctors", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	var doctor dto.DoctorResponse
	if err := c.do(ctx, http.MethodPost, "/doctors", nil, req, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (c *Client) UpdateDoctor(ctx context.Context, id int64, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	var doctor dto.DoctorResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/doctors/%d", id), nil, req, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (c *Client) DeleteDoctor(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/doctors/%d", id), nil, nil, nil)
}

// Nurses

func (c *Client) ListNurses(ctx context.Context, opts ListOptions) (*Page[dto.NurseResponse], error) {
	var page Page[dto.NurseResponse]
	if err := c.do(ctx, http.MethodGet, "/nurses", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) DeleteNurse(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/nurses/%d", id), nil, nil, nil)
}

// Patients

func (c *Client) ListPatients(ctx context.Context, opts ListOptions) (*Page[dto.PatientResponse], error) {
	var page Page[dto.PatientResponse]
	if err := c.do(ctx, http.MethodGet, "/patients", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) DeletePatient(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/patients/%d", id), nil, nil, nil)
}

// Appointments

func (c *Client) ListAppointments(ctx context.Context, opts ListOptions) (*Page[dto.AppointmentResponse], error) {
	var page Page[dto.AppointmentResponse]
	if err := c.do(ctx, http.MethodGet, "/appointments", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) ConfirmAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	var appointment dto.AppointmentResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/appointments/%d/confirm", id), nil, nil, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (c *Client) CancelAppointment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/appointments/%d/cancel", id), nil, nil, nil)
}

func (c *Client) DeleteAppointment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/appointments/%d", id), nil, nil, nil)
}

// Medicines

func (c *Client) ListMedicines(ctx context.Context, opts ListOptions) (*Page[dto.MedicineResponse], error) {
	var page Page[dto.MedicineResponse]
	if err := c.do(ctx, http.MethodGet, "/medicines", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) DeleteMedicine(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/medicines/%d", id), nil, nil, nil)
}

// Lab tests

func (c *Client) ListLabTests(ctx context.Context, opts ListOptions) (*Page[dto.LabTestResponse], error) {
	var page Page[dto.LabTestResponse]
	if err := c.do(ctx, http.MethodGet, "/lab-tests", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) DeleteLabTest(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/lab-tests/%d", id), nil, nil, nil)
}

// Billing

func (c *Client) ListInvoices(ctx context.Context, opts ListOptions) (*Page[dto.InvoiceResponse], error) {
	var page Page[dto.InvoiceResponse]
	if err := c.do(ctx, http.MethodGet, "/invoices", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CancelInvoice(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/invoices/%d/cancel", id), nil, nil, nil)
}

// Facilities

func (c *Client) ListRooms(ctx context.Context, opts ListOptions) (*Page[dto.RoomResponse], error) {
	var page Page[dto.RoomResponse]
	if err := c.do(ctx, http.MethodGet, "/rooms", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) ListDepartments(ctx context.Context, opts ListOptions) (*Page[dto.DepartmentResponse], error) {
	var page Page[dto.DepartmentResponse]
	if err := c.do(ctx, http.MethodGet, "/departments", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Stats

func (c *Client) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	var stats dto.DashboardStatsResponse
	if err := c.do(ctx, http.MethodGet, "/stats/dashboard", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
