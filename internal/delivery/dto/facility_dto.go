package dto

import "time"

// Response DTOs

type RoomResponse struct {
	ID        int64     `json:"id"`
	Number    string    `json:"number"`
	Ward      string    `json:"ward,omitempty"`
	Type      string    `json:"type,omitempty"`
	Capacity  int       `json:"capacity"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoomListResponse struct {
	Content       []RoomResponse `json:"content"`
	TotalElements int64          `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
}

type DepartmentResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Floor       string    `json:"floor,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DepartmentListResponse struct {
	Content       []DepartmentResponse `json:"content"`
	TotalElements int64                `json:"totalElements"`
	TotalPages    int                  `json:"totalPages"`
}
