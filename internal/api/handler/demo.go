package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/response"
	"github.com/Vicky-coder616/dealdish-backend/internal/service"
)

type DemoHandler struct {
	demoService *service.DemoService
}

func NewDemoHandler(demoService *service.DemoService) *DemoHandler {
	return &DemoHandler{demoService: demoService}
}

// Populate reseeds the demo dataset and reports the inserted counts.
// POST /api/demo/populate
func (h *DemoHandler) Populate(c *gin.Context) {
	resp, err := h.demoService.Populate()
	if err != nil {
		response.StorageError(c)
		return
	}

	response.OK(c, resp)
}
