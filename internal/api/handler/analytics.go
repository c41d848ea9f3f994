package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/response"
	"github.com/Vicky-coder616/dealdish-backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// FoodWasteSaved reports the waste-diversion estimate.
// GET /api/analytics/food-waste-saved
func (h *AnalyticsHandler) FoodWasteSaved(c *gin.Context) {
	resp, err := h.analyticsService.FoodWasteSaved(c.Request.Context())
	if err != nil {
		response.StorageError(c)
		return
	}

	response.OK(c, resp)
}
