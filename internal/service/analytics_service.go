package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Vicky-coder616/dealdish-backend/internal/model"
	"github.com/Vicky-coder616/dealdish-backend/internal/model/dto"
	"github.com/Vicky-coder616/dealdish-backend/internal/pkg/pricing"
	"github.com/Vicky-coder616/dealdish-backend/internal/repository"
)

const (
	wasteCacheKey = "analytics:food_waste_saved"
	wasteCacheTTL = 30 * time.Second
)

type AnalyticsService struct {
	orderRepo *repository.OrderRepository
	cache     *redis.Client // optional
}

func NewAnalyticsService(orderRepo *repository.OrderRepository, cache *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		orderRepo: orderRepo,
		cache:     cache,
	}
}

// FoodWasteSaved estimates kilograms diverted from waste: 0.5 kg per
// completed order. The result is briefly cached when redis is configured.
func (s *AnalyticsService) FoodWasteSaved(ctx context.Context) (*dto.FoodWasteResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, wasteCacheKey).Result(); err == nil {
			var resp dto.FoodWasteResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	count, err := s.orderRepo.CountByStatus(model.OrderStatusCompleted)
	if err != nil {
		return nil, err
	}

	resp := &dto.FoodWasteResponse{
		TotalWasteSavedKg: float64(count) * pricing.WastePerOrderKg,
		TotalOrders:       count,
	}

	if s.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			s.cache.Set(ctx, wasteCacheKey, data, wasteCacheTTL)
		}
	}

	return resp, nil
}
