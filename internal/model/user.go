package model

import (
	"time"
)

const (
	UserTypeCustomer   = "customer"
	UserTypeRestaurant = "restaurant"
)

const (
	SubscriptionStatusTrial   = "trial"
	SubscriptionStatusActive  = "active"
	SubscriptionStatusExpired = "expired"
)

type User struct {
	ID                 int64      `gorm:"primaryKey" json:"id"`
	Email              string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name               string     `gorm:"size:100;not null" json:"name"`
	MobileNumber       string     `gorm:"size:20;uniqueIndex;not null" json:"mobile_number"`
	UserType           string     `gorm:"size:20;not null" json:"user_type"` // customer, restaurant
	SubscriptionStatus string     `gorm:"size:20;default:trial" json:"subscription_status"`
	TrialEndDate       *time.Time `json:"trial_end_date,omitempty"`
	CommissionTier     string     `gorm:"size:20;default:trial" json:"commission_tier"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
