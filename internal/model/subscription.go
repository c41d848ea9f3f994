package model

import (
	"time"
)

type Subscription struct {
	ID              int64      `gorm:"primaryKey" json:"id"`
	UserID          int64      `gorm:"not null;uniqueIndex" json:"user_id"`
	Status          string     `gorm:"size:20;default:trial" json:"status"` // trial, active, expired
	TrialEndDate    *time.Time `json:"trial_end_date,omitempty"`
	NextBillingDate *time.Time `json:"next_billing_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
