package service

import (
	"errors"
	"time"

	"github.com/Vicky-coder616/dealdish-backend/internal/model"
	"github.com/Vicky-coder616/dealdish-backend/internal/model/dto"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/pricing"
	"github.com/Vicky-coder616/dealdish-backend/internal/repository"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant does not exist")
	ErrBadDiscount        = errors.New("discounted price must not exceed the original price")
	ErrExpiryInPast       = errors.New("expiry must be in the future")
)

type FoodItemService struct {
	foodItemRepo   *repository.FoodItemRepository
	restaurantRepo *repository.RestaurantRepository
}

func NewFoodItemService(foodItemRepo *repository.FoodItemRepository, restaurantRepo *repository.RestaurantRepository) *FoodItemService {
	return &FoodItemService{
		foodItemRepo:   foodItemRepo,
		restaurantRepo: restaurantRepo,
	}
}

// Create lists a surplus item. The discount percentage is derived from the
// two prices, never taken from the caller.
func (s *FoodItemService) Create(req *dto.FoodItemCreateRequest) (*model.FoodItem, error) {
	exists, err := s.restaurantRepo.ExistsByID(req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRestaurantNotFound
	}

	if req.DiscountedPrice > req.OriginalPrice {
		return nil, ErrBadDiscount
	}

	now := time.Now().UTC()
	if !req.ExpiresAt.After(now) {
		return nil, ErrExpiryInPast
	}

	item := &model.FoodItem{
		RestaurantID:       req.RestaurantID,
		Name:               req.Name,
		Description:        req.Description,
		OriginalPrice:      req.OriginalPrice,
		DiscountedPrice:    req.DiscountedPrice,
		DiscountPercentage: pricing.DiscountPercentage(req.OriginalPrice, req.DiscountedPrice),
		QuantityAvailable:  req.QuantityAvailable,
		DietaryInfo:        req.DietaryInfo,
		ExpiresAt:          req.ExpiresAt.UTC(),
		IsAvailable:        true,
	}

	if err := s.foodItemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns listable items matching the optional filters.
func (s *FoodItemService) List(filter *dto.FoodItemFilter) ([]model.FoodItem, error) {
	return s.foodItemRepo.ListAvailable(time.Now().UTC(), filter.CuisineType, filter.DietaryRestrictions)
}
