package service

import (
	"gorm.io/gorm"

	"github.com/Vicky-coder616/dealdish-backend/internal/database"
	"github.com/Vicky-coder616/dealdish-backend/internal/model/dto"
)

type DemoService struct {
	db *gorm.DB
}

func NewDemoService(db *gorm.DB) *DemoService {
	return &DemoService{db: db}
}

// Populate clears and reseeds the restaurant and food-item collections
// with the fixed demo dataset. Safe to call repeatedly.
func (s *DemoService) Populate() (*dto.PopulateResponse, error) {
	restaurants, foodItems, err := database.SeedDemoData(s.db)
	if err != nil {
		return nil, err
	}

	return &dto.PopulateResponse{
		Restaurants: restaurants,
		FoodItems:   foodItems,
	}, nil
}
