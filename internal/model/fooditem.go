package model

import (
	"time"
)

type FoodItem struct {
	ID                 int64     `gorm:"primaryKey" json:"id"`
	RestaurantID       int64     `gorm:"not null;index" json:"restaurant_id"`
	Name               string    `gorm:"size:100;not null" json:"name"`
	Description        string    `gorm:"type:text" json:"description"`
	OriginalPrice      float64   `gorm:"type:decimal(10,2);not null" json:"original_price"`
	DiscountedPrice    float64   `gorm:"type:decimal(10,2);not null" json:"discounted_price"`
	DiscountPercentage int       `json:"discount_percentage"`
	QuantityAvailable  int       `gorm:"default:0" json:"quantity_available"`
	DietaryInfo        string    `gorm:"size:255" json:"dietary_info"` // comma-separated, e.g. "vegetarian,gluten-free"
	ExpiresAt          time.Time `gorm:"not null;index" json:"expires_at"`
	IsAvailable        bool      `gorm:"default:true" json:"is_available"`
	CreatedAt          time.Time `json:"created_at"`
}

func (FoodItem) TableName() string {
	return "food_items"
}
