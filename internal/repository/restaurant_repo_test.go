package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vicky-coder616/dealdish-backend/internal/testutil"
)

func TestRestaurantRepository_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewRestaurantRepository(db)
	created := testutil.TestRestaurant(t, db)

	found, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)
	assert.Equal(t, 0.10, found.CommissionRate)
	assert.True(t, found.IsActive)
}

func TestRestaurantRepository_ExistsByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewRestaurantRepository(db)
	created := testutil.TestRestaurant(t, db)

	exists, err := repo.ExistsByID(created.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(99999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRestaurantRepository_ListActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewRestaurantRepository(db)
	active := testutil.TestRestaurant(t, db)
	testutil.TestRestaurant(t, db, testutil.WithInactive())

	restaurants, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, active.ID, restaurants[0].ID)
}
