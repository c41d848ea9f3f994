package dto

import "time"

// FoodItemCreateRequest is the surplus-listing payload. The discount
// percentage is always derived, never accepted from the caller.
type FoodItemCreateRequest struct {
	RestaurantID      int64     `json:"restaurant_id" binding:"required"`
	Name              string    `json:"name" binding:"required,min=1,max=100"`
	Description       string    `json:"description"`
	OriginalPrice     float64   `json:"original_price" binding:"required,gt=0"`
	DiscountedPrice   float64   `json:"discounted_price" binding:"required,gt=0"`
	QuantityAvailable int       `json:"quantity_available" binding:"required,gt=0"`
	DietaryInfo       string    `json:"dietary_info"`
	ExpiresAt         time.Time `json:"expires_at" binding:"required"`
}

// FoodItemFilter narrows the public listing.
type FoodItemFilter struct {
	CuisineType         string `form:"cuisine_type"`
	DietaryRestrictions string `form:"dietary_restrictions"`
}
