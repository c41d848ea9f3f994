package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Vicky-coder616/dealdish-backend/internal/model/dto"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/response"
	"github.com/Vicky-coder616/dealdish-backend/internal/service"
)

type RestaurantHandler struct {
	restaurantService *service.RestaurantService
}

func NewRestaurantHandler(restaurantService *service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
	}
}

// List returns the active restaurants.
// GET /api/restaurants
func (h *RestaurantHandler) List(c *gin.Context) {
	restaurants, err := h.restaurantService.List()
	if err != nil {
		response.StorageError(c)
		return
	}

	response.OK(c, restaurants)
}

// Create registers a restaurant, geocoding its address best-effort.
// POST /api/restaurants
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req dto.RestaurantCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	restaurant, err := h.restaurantService.Create(c.Request.Context(), &req)
	if err != nil {
		response.StorageError(c)
		return
	}

	response.Created(c, restaurant)
}
