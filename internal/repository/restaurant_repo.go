package repository

import (
	"gorm.io/gorm"

	"github.com/Vicky-coder616/dealdish-backend/internal/model"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) Create(restaurant *model.Restaurant) error {
	return r.db.Create(restaurant).Error
}

func (r *RestaurantRepository) GetByID(id int64) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	err := r.db.Where("id = ?", id).First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) ExistsByID(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Restaurant{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *RestaurantRepository) ListActive() ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	err := r.db.Where("is_active = ?", true).Order("id").Find(&restaurants).Error
	return restaurants, err
}
