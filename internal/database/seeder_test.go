package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vicky-coder616/dealdish-backend/internal/model"
	"github.com/Vicky-coder616/dealdish-backend/internal/testutil"
)

func TestSeedDemoData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	restaurants, foodItems, err := SeedDemoData(db)
	require.NoError(t, err)
	assert.Equal(t, 3, restaurants)
	assert.Equal(t, 9, foodItems)

	var items []model.FoodItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 9)

	now := time.Now().UTC()
	for _, item := range items {
		assert.True(t, item.IsAvailable)
		assert.True(t, item.ExpiresAt.After(now), "seeded item %q must not be pre-expired", item.Name)
		assert.Greater(t, item.DiscountPercentage, 0)
	}

	// spot-check a computed discount: 22.0 -> 12.0 floors to 45%
	var pizza model.FoodItem
	require.NoError(t, db.Where("name = ?", "Margherita Pizza").First(&pizza).Error)
	assert.Equal(t, 45, pizza.DiscountPercentage)
}

func TestSeedDemoData_Reseed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	_, _, err := SeedDemoData(db)
	require.NoError(t, err)

	// a second run replaces, never accumulates
	restaurants, foodItems, err := SeedDemoData(db)
	require.NoError(t, err)
	assert.Equal(t, 3, restaurants)
	assert.Equal(t, 9, foodItems)

	var restaurantCount, itemCount int64
	db.Model(&model.Restaurant{}).Count(&restaurantCount)
	db.Model(&model.FoodItem{}).Count(&itemCount)
	assert.Equal(t, int64(3), restaurantCount)
	assert.Equal(t, int64(9), itemCount)
}
