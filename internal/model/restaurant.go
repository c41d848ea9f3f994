package model

import (
	"time"
)

type Restaurant struct {
	ID                  int64     `gorm:"primaryKey" json:"id"`
	UserID              int64     `gorm:"index" json:"user_id"`
	Name                string    `gorm:"size:100;not null" json:"name"`
	Address             string    `gorm:"size:255;not null" json:"address"`
	CuisineType         string    `gorm:"size:50;index" json:"cuisine_type"`
	Rating              float64   `gorm:"default:0" json:"rating"`
	CommissionRate      float64   `gorm:"type:decimal(5,2)" json:"commission_rate"`
	TotalCommissionPaid float64   `gorm:"type:decimal(10,2);default:0" json:"total_commission_paid"`
	OrdersCount         int       `gorm:"default:0" json:"orders_count"`
	Latitude            *float64  `json:"latitude,omitempty"`
	Longitude           *float64  `json:"longitude,omitempty"`
	IsActive            bool      `gorm:"default:true" json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
