package model

import (
	"time"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type OrderItem struct {
	FoodItemID int64   `json:"food_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type Order struct {
	ID               int64       `gorm:"primaryKey" json:"id"`
	CustomerID       int64       `gorm:"not null;index" json:"customer_id"`
	RestaurantID     int64       `gorm:"not null;index" json:"restaurant_id"`
	Items            []OrderItem `gorm:"serializer:json" json:"food_items"`
	TotalAmount      float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	CommissionRate   float64     `gorm:"type:decimal(5,2)" json:"commission_rate"`
	CommissionAmount float64     `gorm:"type:decimal(10,2)" json:"commission_amount"`
	Status           string      `gorm:"size:20;default:pending;index" json:"status"`
	QRCode           string      `gorm:"size:64;uniqueIndex;not null" json:"qr_code"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// terminal statuses admit no further transitions.
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusCompleted || o.Status == OrderStatusCancelled
}
