package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Vicky-coder616/dealdish-backend/internal/model/dto"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/response"
	"github.com/Vicky-coder616/dealdish-backend/internal/service"
)

type FoodItemHandler struct {
	foodItemService *service.FoodItemService
}

func NewFoodItemHandler(foodItemService *service.FoodItemService) *FoodItemHandler {
	return &FoodItemHandler{
		foodItemService: foodItemService,
	}
}

// List returns available, unexpired items with optional filters.
// GET /api/food-items?cuisine_type=&dietary_restrictions=
func (h *FoodItemHandler) List(c *gin.Context) {
	var filter dto.FoodItemFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	items, err := h.foodItemService.List(&filter)
	if err != nil {
		response.StorageError(c)
		return
	}

	response.OK(c, items)
}

// Create lists a surplus item with a computed discount percentage.
// POST /api/food-items
func (h *FoodItemHandler) Create(c *gin.Context) {
	var req dto.FoodItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	item, err := h.foodItemService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRestaurantNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrBadDiscount),
			errors.Is(err, service.ErrExpiryInPast):
			response.ValidationError(c, err.Error())
		default:
			response.StorageError(c)
		}
		return
	}

	response.Created(c, item)
}
