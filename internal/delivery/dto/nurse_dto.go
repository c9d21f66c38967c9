package dto

import "time"

// Request DTOs

type CreateNurseRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty"`
	Department string `json:"department" validate:"omitempty"`
	Shift      string `json:"shift" validate:"omitempty,oneof=morning evening night"`
}

type UpdateNurseRequest struct {
	Name       string `json:"name" validate:"omitempty,min=2"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty"`
	Department string `json:"department" validate:"omitempty"`
	Shift      string `json:"shift" validate:"omitempty,oneof=morning evening night"`
	Status     string `json:"status" validate:"omitempty,oneof=active inactive on_leave"`
}

// Response DTOs

type NurseResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Department string    `json:"department,omitempty"`
	Shift      string    `json:"shift,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type NurseListResponse struct {
	Content       []NurseResponse `json:"content"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
}
