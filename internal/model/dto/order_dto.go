package dto

import (
	"github.com/Vicky-coder616/dealdish-backend/internal/model"
)

// OrderCreateRequest is the checkout payload. Commission fields are
// snapshotted server-side from the restaurant at creation time.
type OrderCreateRequest struct {
	CustomerID   int64             `json:"customer_id" binding:"required"`
	RestaurantID int64             `json:"restaurant_id" binding:"required"`
	Items        []model.OrderItem `json:"food_items" binding:"required,min=1"`
	TotalAmount  float64           `json:"total_amount" binding:"required,gt=0"`
}

// AdvanceStatusRequest moves an order through its lifecycle.
type AdvanceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed ready completed cancelled"`
}
