package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Vicky-coder616/dealdish-backend/internal/api/middleware"
	"github.com/Vicky-coder616/dealdish-backend/internal/model/dto"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/response"
	"github.com/Vicky-coder616/dealdish-backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a user account.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, service.ErrInvalidMobile),
			errors.Is(err, service.ErrDuplicateEmail),
			errors.Is(err, service.ErrDuplicateMobile):
			response.ValidationError(c, err.Error())
		default:
			response.StorageError(c)
		}
		return
	}

	response.Created(c, user)
}

// Login authenticates by email and returns the user plus a session token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.AuthError(c, err.Error())
		default:
			response.StorageError(c)
		}
		return
	}

	response.OK(c, resp)
}

// GetSubscription returns the authenticated user's subscription.
// GET /api/auth/subscription
func (h *AuthHandler) GetSubscription(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "not authenticated")
		return
	}

	sub, err := h.authService.GetSubscription(userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSubscription):
			response.NotFoundError(c, err.Error())
		default:
			response.StorageError(c)
		}
		return
	}

	response.OK(c, sub)
}
