package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vicky-coder616/dealdish-backend/internal/model"
	"github.com/Vicky-coder616/dealdish-backend/internal/repository"
	"github.com/Vicky-coder616/dealdish-backend/internal/testutil"
)

func TestAnalyticsService_FoodWasteSaved(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	customer := testutil.TestUser(t, db)
	restaurant := testutil.TestRestaurant(t, db)
	for i := 0; i < 3; i++ {
		testutil.TestOrder(t, db, customer.ID, restaurant.ID, model.OrderStatusCompleted)
	}
	// non-completed orders never count
	testutil.TestOrder(t, db, customer.ID, restaurant.ID, model.OrderStatusPending)
	testutil.TestOrder(t, db, customer.ID, restaurant.ID, model.OrderStatusCancelled)

	svc := NewAnalyticsService(repository.NewOrderRepository(db), nil)

	resp, err := svc.FoodWasteSaved(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TotalOrders)
	assert.InDelta(t, 1.5, resp.TotalWasteSavedKg, 1e-9)
}

func TestAnalyticsService_FoodWasteSaved_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	svc := NewAnalyticsService(repository.NewOrderRepository(db), nil)

	resp, err := svc.FoodWasteSaved(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.TotalOrders)
	assert.Zero(t, resp.TotalWasteSavedKg)
}

func TestAnalyticsService_FoodWasteSaved_Cached(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	customer := testutil.TestUser(t, db)
	restaurant := testutil.TestRestaurant(t, db)
	testutil.TestOrder(t, db, customer.ID, restaurant.ID, model.OrderStatusCompleted)

	svc := NewAnalyticsService(repository.NewOrderRepository(db), cache)
	ctx := context.Background()

	resp, err := svc.FoodWasteSaved(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalOrders)

	// within the TTL the cached figure is served even though the
	// underlying count has moved on
	testutil.TestOrder(t, db, customer.ID, restaurant.ID, model.OrderStatusCompleted)

	resp, err = svc.FoodWasteSaved(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalOrders)

	// once the cache entry lapses the fresh count comes through
	mr.FastForward(wasteCacheTTL + 1)

	resp, err = svc.FoodWasteSaved(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.TotalOrders)
	assert.InDelta(t, 1.0, resp.TotalWasteSavedKg, 1e-9)
}
