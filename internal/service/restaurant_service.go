package service

import (
	"context"
	"log"

	"github.com/Vicky-coder616/dealdish-backend/internal/model"
	"github.com/Vicky-coder616/dealdish-backend/internal/model/dto"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/geocoder"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/pricing"
	"github.com/Vicky-coder616/dealdish-backend/internal/repository"
)

// Geocoder resolves an address to coordinates, best-effort.
type Geocoder interface {
	Lookup(ctx context.Context, address string) (*geocoder.Coordinates, error)
}

type RestaurantService struct {
	restaurantRepo *repository.RestaurantRepository
	geocoder       Geocoder
}

func NewRestaurantService(restaurantRepo *repository.RestaurantRepository, geo Geocoder) *RestaurantService {
	return &RestaurantService{
		restaurantRepo: restaurantRepo,
		geocoder:       geo,
	}
}

// Create registers a restaurant at the fixed commission rate. Geocoding is
// best-effort: a failed lookup leaves the coordinates null and never
// fails the creation.
func (s *RestaurantService) Create(ctx context.Context, req *dto.RestaurantCreateRequest) (*model.Restaurant, error) {
	restaurant := &model.Restaurant{
		UserID:         req.UserID,
		Name:           req.Name,
		Address:        req.Address,
		CuisineType:    req.CuisineType,
		CommissionRate: pricing.CommissionRateFor(pricing.TierTrial),
		IsActive:       true,
	}

	if s.geocoder != nil {
		coords, err := s.geocoder.Lookup(ctx, req.Address)
		if err != nil {
			log.Printf("geocode failed for %q: %v", req.Address, err)
		} else {
			restaurant.Latitude = &coords.Latitude
			restaurant.Longitude = &coords.Longitude
		}
	}

	if err := s.restaurantRepo.Create(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// List returns the active restaurants.
func (s *RestaurantService) List() ([]model.Restaurant, error) {
	return s.restaurantRepo.ListActive()
}
