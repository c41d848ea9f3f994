package handler

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vicky-coder616/dealdish-backend/internal/model/dto"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/response"
)

const appName = "dealdish-backend"

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check reports liveness and database reachability.
// GET /api/health
func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := "connected"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "unreachable"
	}

	response.OK(c, dto.HealthResponse{
		Status:   "healthy",
		App:      appName,
		Database: dbStatus,
	})
}
