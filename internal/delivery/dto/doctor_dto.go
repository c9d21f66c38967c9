package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"omitempty"`
	Specialization  string `json:"specialization" validate:"omitempty"`
	Department      string `json:"department" validate:"omitempty"`
	ExperienceYears int    `json:"experience_years" validate:"omitempty,gte=0"`
}

type UpdateDoctorRequest struct {
	Name            string `json:"name" validate:"omitempty,min=2"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone" validate:"omitempty"`
	Specialization  string `json:"specialization" validate:"omitempty"`
	Department      string `json:"department" validate:"omitempty"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,gte=0"`
	Status          string `json:"status" validate:"omitempty,oneof=active inactive on_leave"`
}

// Response DTOs

type DoctorResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Specialization  string    `json:"specialization,omitempty"`
	Department      string    `json:"department,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Content       []DoctorResponse `json:"content"`
	TotalElements int64            `json:"totalElements"`
	TotalPages    int              `json:"totalPages"`
}
