package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/Vicky-coder616/dealdish-backend/internal/model"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/pricing"
)

// demoRestaurants is the fixed demo dataset: three restaurants, three
// surplus listings each.
var demoRestaurants = []struct {
	Restaurant model.Restaurant
	Items      []model.FoodItem
}{
	{
		Restaurant: model.Restaurant{
			Name:        "Luigi's Trattoria",
			Address:     "21 Crown St, Surry Hills NSW 2010",
			CuisineType: "italian",
			Rating:      4.6,
		},
		Items: []model.FoodItem{
			{Name: "Margherita Pizza", OriginalPrice: 22.0, DiscountedPrice: 12.0, QuantityAvailable: 4, DietaryInfo: "vegetarian"},
			{Name: "Penne Arrabbiata", OriginalPrice: 19.0, DiscountedPrice: 10.0, QuantityAvailable: 3, DietaryInfo: "vegetarian,vegan"},
			{Name: "Tiramisu", OriginalPrice: 12.0, DiscountedPrice: 6.0, QuantityAvailable: 6, DietaryInfo: "vegetarian"},
		},
	},
	{
		Restaurant: model.Restaurant{
			Name:        "Golden Wok",
			Address:     "88 Dixon St, Haymarket NSW 2000",
			CuisineType: "chinese",
			Rating:      4.3,
		},
		Items: []model.FoodItem{
			{Name: "Vegetable Spring Rolls", OriginalPrice: 10.0, DiscountedPrice: 5.0, QuantityAvailable: 10, DietaryInfo: "vegetarian,vegan"},
			{Name: "Kung Pao Chicken", OriginalPrice: 18.0, DiscountedPrice: 9.5, QuantityAvailable: 5, DietaryInfo: ""},
			{Name: "Fried Rice", OriginalPrice: 14.0, DiscountedPrice: 7.0, QuantityAvailable: 8, DietaryInfo: "gluten-free"},
		},
	},
	{
		Restaurant: model.Restaurant{
			Name:        "Bondi Greens",
			Address:     "140 Campbell Parade, Bondi Beach NSW 2026",
			CuisineType: "healthy",
			Rating:      4.8,
		},
		Items: []model.FoodItem{
			{Name: "Quinoa Buddha Bowl", OriginalPrice: 17.5, DiscountedPrice: 9.0, QuantityAvailable: 4, DietaryInfo: "vegan,gluten-free"},
			{Name: "Acai Smoothie Bowl", OriginalPrice: 15.0, DiscountedPrice: 8.0, QuantityAvailable: 5, DietaryInfo: "vegan"},
			{Name: "Halloumi Salad", OriginalPrice: 16.0, DiscountedPrice: 8.5, QuantityAvailable: 3, DietaryInfo: "vegetarian,gluten-free"},
		},
	},
}

// SeedDemoData clears the restaurant and food-item collections and
// reinserts the fixed demo dataset. Repeated calls converge on the same
// state. Returns the inserted counts.
func SeedDemoData(db *gorm.DB) (restaurants int, foodItems int, err error) {
	expiresAt := time.Now().UTC().Add(6 * time.Hour)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.FoodItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&model.Restaurant{}).Error; err != nil {
			return err
		}

		for _, seed := range demoRestaurants {
			restaurant := seed.Restaurant
			restaurant.CommissionRate = pricing.CommissionRateFor(pricing.TierTrial)
			restaurant.IsActive = true
			if err := tx.Create(&restaurant).Error; err != nil {
				return err
			}
			restaurants++

			for _, item := range seed.Items {
				item.RestaurantID = restaurant.ID
				item.DiscountPercentage = pricing.DiscountPercentage(item.OriginalPrice, item.DiscountedPrice)
				item.ExpiresAt = expiresAt
				item.IsAvailable = true
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				foodItems++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return restaurants, foodItems, nil
}
