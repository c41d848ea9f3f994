package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Vicky-coder616/dealdish-backend/internal/model"
	"github.com/Vicky-coder616/dealdish-backend/internal/model/dto"
	"github.com/Vicky-coder616/dealdish-backend/internal/repository"
	"github.com/Vicky-coder616/dealdish-backend/internal/service"
	"github.com/Vicky-coder616/dealdish-backend/internal/testutil"
)

func setupFoodItemHandler(t *testing.T) (*FoodItemHandler, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	foodItemService := service.NewFoodItemService(
		repository.NewFoodItemRepository(db),
		repository.NewRestaurantRepository(db),
	)
	handler := NewFoodItemHandler(foodItemService)

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return handler, db, cleanup
}

func foodItemPayload(restaurantID int64) dto.FoodItemCreateRequest {
	return dto.FoodItemCreateRequest{
		RestaurantID:      restaurantID,
		Name:              "Margherita Pizza",
		OriginalPrice:     25.0,
		DiscountedPrice:   15.0,
		QuantityAvailable: 3,
		ExpiresAt:         time.Now().UTC().Add(4 * time.Hour),
	}
}

func TestFoodItemHandler_Create(t *testing.T) {
	handler, db, cleanup := setupFoodItemHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/food-items", handler.Create)

	restaurant := testutil.TestRestaurant(t, db)

	w := performRequest(router, "POST", "/food-items", foodItemPayload(restaurant.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	var item model.FoodItem
	parseBody(t, w, &item)
	assert.Equal(t, 40, item.DiscountPercentage)
	assert.True(t, item.IsAvailable)
}

func TestFoodItemHandler_Create_RestaurantMissing(t *testing.T) {
	handler, _, cleanup := setupFoodItemHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/food-items", handler.Create)

	w := performRequest(router, "POST", "/food-items", foodItemPayload(99999))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, parseError(t, w).Detail)
}

func TestFoodItemHandler_Create_BadDiscount(t *testing.T) {
	handler, db, cleanup := setupFoodItemHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/food-items", handler.Create)

	restaurant := testutil.TestRestaurant(t, db)
	req := foodItemPayload(restaurant.ID)
	req.DiscountedPrice = 30.0

	w := performRequest(router, "POST", "/food-items", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFoodItemHandler_Create_ExpiredListing(t *testing.T) {
	handler, db, cleanup := setupFoodItemHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/food-items", handler.Create)

	restaurant := testutil.TestRestaurant(t, db)
	req := foodItemPayload(restaurant.ID)
	req.ExpiresAt = time.Now().UTC().Add(-time.Hour)

	w := performRequest(router, "POST", "/food-items", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFoodItemHandler_List_Filters(t *testing.T) {
	handler, db, cleanup := setupFoodItemHandler(t)
	defer cleanup()

	router := gin.New()
	router.GET("/food-items", handler.List)

	italian := testutil.TestRestaurant(t, db, testutil.WithCuisine("italian"))
	chinese := testutil.TestRestaurant(t, db, testutil.WithCuisine("chinese"))

	vegan := testutil.TestFoodItem(t, db, italian.ID, testutil.WithDietaryInfo("vegetarian,vegan"))
	testutil.TestFoodItem(t, db, chinese.ID)
	testutil.TestFoodItem(t, db, italian.ID,
		testutil.WithExpiresAt(time.Now().UTC().Add(-time.Hour)))
	testutil.TestFoodItem(t, db, italian.ID, testutil.WithUnavailable())

	// unfiltered: only available, unexpired items
	w := performRequest(router, "GET", "/food-items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []model.FoodItem
	parseBody(t, w, &items)
	assert.Len(t, items, 2)

	// cuisine + dietary narrow to the single vegan italian item
	w = performRequest(router, "GET", "/food-items?cuisine_type=italian&dietary_restrictions=vegan", nil)
	require.Equal(t, http.StatusOK, w.Code)
	parseBody(t, w, &items)
	require.Len(t, items, 1)
	assert.Equal(t, vegan.ID, items[0].ID)
}
