package dto

import (
	"time"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
)

// CreateUserRequest defines the structure for registering a user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	// Role defaults to CUSTOMER when omitted; only admins may set another role.
	Role string `json:"role" binding:"omitempty,oneof=CUSTOMER DRIVER ADMIN"`
}

// UpdateUserRequest defines the mutable profile fields.
type UpdateUserRequest struct {
	Name string `json:"name" binding:"required"`
}

// LoginRequest defines the credentials payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse defines the API shape of a user.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to the API DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain users to response DTOs.
func ToListUserResponse(us []domain.User) []UserResponse {
	responses := make([]UserResponse, len(us))
	for i := range us {
		responses[i] = ToUserResponse(&us[i])
	}
	return responses
}
