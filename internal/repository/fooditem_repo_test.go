package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vicky-coder616/dealdish-backend/internal/testutil"
)

func TestFoodItemRepository_ListAvailable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewFoodItemRepository(db)
	restaurant := testutil.TestRestaurant(t, db)

	now := time.Now().UTC()
	listed := testutil.TestFoodItem(t, db, restaurant.ID)
	testutil.TestFoodItem(t, db, restaurant.ID, testutil.WithExpiresAt(now.Add(-time.Hour)))
	testutil.TestFoodItem(t, db, restaurant.ID, testutil.WithUnavailable())

	items, err := repo.ListAvailable(now, "", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, listed.ID, items[0].ID)
}

func TestFoodItemRepository_ListAvailable_CuisineFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewFoodItemRepository(db)
	italian := testutil.TestRestaurant(t, db, testutil.WithCuisine("italian"))
	chinese := testutil.TestRestaurant(t, db, testutil.WithCuisine("chinese"))

	testutil.TestFoodItem(t, db, italian.ID)
	wanted := testutil.TestFoodItem(t, db, chinese.ID)

	items, err := repo.ListAvailable(time.Now().UTC(), "chinese", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, wanted.ID, items[0].ID)
}

func TestFoodItemRepository_ListAvailable_DietaryFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewFoodItemRepository(db)
	restaurant := testutil.TestRestaurant(t, db)

	vegan := testutil.TestFoodItem(t, db, restaurant.ID, testutil.WithDietaryInfo("vegan,gluten-free"))
	testutil.TestFoodItem(t, db, restaurant.ID, testutil.WithDietaryInfo(""))

	items, err := repo.ListAvailable(time.Now().UTC(), "", "vegan")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, vegan.ID, items[0].ID)
}

func TestFoodItemRepository_CountByRestaurant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewFoodItemRepository(db)
	restaurant := testutil.TestRestaurant(t, db)

	testutil.TestFoodItem(t, db, restaurant.ID)
	testutil.TestFoodItem(t, db, restaurant.ID)

	count, err := repo.CountByRestaurant(restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
