package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/Vicky-coder616/dealdish-backend/internal/model"
)

type FoodItemRepository struct {
	db *gorm.DB
}

func NewFoodItemRepository(db *gorm.DB) *FoodItemRepository {
	return &FoodItemRepository{db: db}
}

func (r *FoodItemRepository) Create(item *model.FoodItem) error {
	return r.db.Create(item).Error
}

func (r *FoodItemRepository) GetByID(id int64) (*model.FoodItem, error) {
	var item model.FoodItem
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListAvailable returns listable items: available, unexpired, optionally
// narrowed by the restaurant's cuisine and a dietary tag.
func (r *FoodItemRepository) ListAvailable(now time.Time, cuisineType, dietary string) ([]model.FoodItem, error) {
	query := r.db.Model(&model.FoodItem{}).
		Where("food_items.is_available = ?", true).
		Where("food_items.expires_at > ?", now)

	if cuisineType != "" {
		query = query.
			Joins("JOIN restaurants ON restaurants.id = food_items.restaurant_id").
			Where("restaurants.cuisine_type = ?", cuisineType)
	}
	if dietary != "" {
		query = query.Where("food_items.dietary_info LIKE ?", "%"+dietary+"%")
	}

	var items []model.FoodItem
	err := query.Order("food_items.expires_at").Find(&items).Error
	return items, err
}

func (r *FoodItemRepository) CountByRestaurant(restaurantID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.FoodItem{}).Where("restaurant_id = ?", restaurantID).Count(&count).Error
	return count, err
}
