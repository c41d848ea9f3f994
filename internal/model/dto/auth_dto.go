package dto

import (
	"github.com/Vicky-coder616/dealdish-backend/internal/model"
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Name         string `json:"name" binding:"required,min=1,max=100"`
	MobileNumber string `json:"mobile_number" binding:"required"`
	UserType     string `json:"user_type" binding:"required,oneof=customer restaurant"`
}

// LoginRequest carries the email-only stub credentials.
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// LoginResponse returns the user plus a signed session token.
type LoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}
