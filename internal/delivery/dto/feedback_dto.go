package dto

import "time"

// Request DTOs

type CreateFeedbackRequest struct {
	PatientID *int64 `json:"patient_id" validate:"omitempty"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment" validate:"omitempty,max=2000"`
}

type UpdateFeedbackRequest struct {
	Status string `json:"status" validate:"required,oneof=new reviewed"`
}

// Response DTOs

type FeedbackResponse struct {
	ID        int64     `json:"id"`
	PatientID *int64    `json:"patient_id,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FeedbackListResponse struct {
	Content       []FeedbackResponse `json:"content"`
	TotalElements int64              `json:"totalElements"`
	TotalPages    int                `json:"totalPages"`
}
