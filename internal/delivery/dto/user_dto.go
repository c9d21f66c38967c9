package dto

// Request DTOs

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,min=2"`
	Role     string `json:"role" validate:"required,oneof=admin doctor nurse receptionist"`
}

type UpdateUserRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	FullName string `json:"full_name" validate:"omitempty,min=2"`
	Role     string `json:"role" validate:"omitempty,oneof=admin doctor nurse receptionist"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type UserListResponse struct {
	Content       []UserResponse `json:"content"`
	TotalElements int64          `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
}
