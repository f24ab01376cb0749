package dto

import (
	"time"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// RegisterRequest is the signup payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

// LoginRequest is the signin payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResendVerificationRequest asks for a fresh verification mail
type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

// AuthResponse pairs an account with its bearer token
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse maps a user entity to its API representation
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		FullName:      user.FullName,
		Role:          string(user.Role),
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}
}
