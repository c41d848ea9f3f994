package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Vicky-coder616/dealdish-backend/internal/model"
)

var fixtureSeq int64

func nextSeq() int64 {
	return atomic.AddInt64(&fixtureSeq, 1)
}

// TestUser creates a customer user with a live 30-day trial.
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	n := nextSeq()
	trialEnd := time.Now().UTC().Add(30 * 24 * time.Hour)
	user := &model.User{
		Email:              fmt.Sprintf("test_%d@example.com", n),
		Name:               fmt.Sprintf("Test User %d", n),
		MobileNumber:       fmt.Sprintf("04%08d", n%100000000),
		UserType:           model.UserTypeCustomer,
		SubscriptionStatus: model.SubscriptionStatusTrial,
		TrialEndDate:       &trialEnd,
		CommissionTier:     "trial",
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithEmail sets the user's email.
func WithEmail(email string) func(*model.User) {
	return func(u *model.User) {
		u.Email = email
	}
}

// WithMobile sets the user's mobile number.
func WithMobile(mobile string) func(*model.User) {
	return func(u *model.User) {
		u.MobileNumber = mobile
	}
}

// WithUserType sets the account type.
func WithUserType(userType string) func(*model.User) {
	return func(u *model.User) {
		u.UserType = userType
		if userType == model.UserTypeRestaurant {
			u.TrialEndDate = nil
			u.SubscriptionStatus = model.SubscriptionStatusActive
		}
	}
}

// WithTrialEnd sets the trial expiry.
func WithTrialEnd(end time.Time) func(*model.User) {
	return func(u *model.User) {
		u.TrialEndDate = &end
	}
}

// TestRestaurant creates an active restaurant.
func TestRestaurant(t *testing.T, db *gorm.DB, opts ...func(*model.Restaurant)) *model.Restaurant {
	t.Helper()

	n := nextSeq()
	restaurant := &model.Restaurant{
		Name:           fmt.Sprintf("Test Restaurant %d", n),
		Address:        fmt.Sprintf("%d George St, Sydney NSW 2000", n),
		CuisineType:    "italian",
		CommissionRate: 0.10,
		IsActive:       true,
	}

	for _, opt := range opts {
		opt(restaurant)
	}

	if err := db.Create(restaurant).Error; err != nil {
		t.Fatalf("Failed to create test restaurant: %v", err)
	}

	return restaurant
}

// WithCuisine sets the cuisine type.
func WithCuisine(cuisine string) func(*model.Restaurant) {
	return func(r *model.Restaurant) {
		r.CuisineType = cuisine
	}
}

// WithInactive marks the restaurant inactive.
func WithInactive() func(*model.Restaurant) {
	return func(r *model.Restaurant) {
		r.IsActive = false
	}
}

// TestFoodItem creates an available surplus listing expiring in the future.
func TestFoodItem(t *testing.T, db *gorm.DB, restaurantID int64, opts ...func(*model.FoodItem)) *model.FoodItem {
	t.Helper()

	n := nextSeq()
	item := &model.FoodItem{
		RestaurantID:       restaurantID,
		Name:               fmt.Sprintf("Test Item %d", n),
		OriginalPrice:      20.0,
		DiscountedPrice:    10.0,
		DiscountPercentage: 50,
		QuantityAvailable:  5,
		ExpiresAt:          time.Now().UTC().Add(4 * time.Hour),
		IsAvailable:        true,
	}

	for _, opt := range opts {
		opt(item)
	}

	if err := db.Create(item).Error; err != nil {
		t.Fatalf("Failed to create test food item: %v", err)
	}

	return item
}

// WithDietaryInfo sets the dietary tags.
func WithDietaryInfo(info string) func(*model.FoodItem) {
	return func(i *model.FoodItem) {
		i.DietaryInfo = info
	}
}

// WithExpiresAt sets the expiry timestamp.
func WithExpiresAt(expiresAt time.Time) func(*model.FoodItem) {
	return func(i *model.FoodItem) {
		i.ExpiresAt = expiresAt
	}
}

// WithUnavailable marks the item unavailable.
func WithUnavailable() func(*model.FoodItem) {
	return func(i *model.FoodItem) {
		i.IsAvailable = false
	}
}

// TestOrder creates an order in the given status.
func TestOrder(t *testing.T, db *gorm.DB, customerID, restaurantID int64, status string) *model.Order {
	t.Helper()

	order := &model.Order{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Items: []model.OrderItem{
			{FoodItemID: 1, Name: "Test Item", Quantity: 1, Price: 10.0},
		},
		TotalAmount:      10.0,
		CommissionRate:   0.10,
		CommissionAmount: 1.0,
		Status:           status,
		QRCode:           uuid.NewString(),
	}

	if err := db.Create(order).Error; err != nil {
		t.Fatalf("Failed to create test order: %v", err)
	}

	return order
}
