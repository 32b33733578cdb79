package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{})
	require.NoError(t, err)

	return db
}

type fixtures struct {
	restaurants []models.Restaurant
	pizzas      []models.Pizza
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	f := fixtures{
		restaurants: []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
		},
		pizzas: []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		},
	}
	require.NoError(t, db.Create(&f.restaurants).Error)
	require.NoError(t, db.Create(&f.pizzas).Error)
	return f
}

func TestListRestaurants(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)
	ctx := context.Background()

	restaurants, err := service.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.NotNil(t, restaurants)
	assert.Empty(t, restaurants)

	f := seedFixtures(t, db)
	restaurants, err = service.ListRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, f.restaurants[0].ID, restaurants[0].ID)
	assert.Equal(t, "Sanjay's Pizza", restaurants[1].Name)
}

func TestGetRestaurant(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	service := NewRestaurantService(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.RestaurantPizza{RestaurantID: f.restaurants[0].ID, PizzaID: f.pizzas[1].ID, Price: 12}).Error)
	require.NoError(t, db.Create(&models.RestaurantPizza{RestaurantID: f.restaurants[0].ID, PizzaID: f.pizzas[0].ID, Price: 9}).Error)
	require.NoError(t, db.Create(&models.RestaurantPizza{RestaurantID: f.restaurants[1].ID, PizzaID: f.pizzas[0].ID, Price: 3}).Error)

	t.Run("found with nested pizzas", func(t *testing.T) {
		restaurant, err := service.GetRestaurant(ctx, f.restaurants[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Karen's Pizza Shack", restaurant.Name)
		require.Len(t, restaurant.RestaurantPizzas, 2)
		assert.Equal(t, 12, restaurant.RestaurantPizzas[0].Price)
		require.NotNil(t, restaurant.RestaurantPizzas[0].Pizza)
		assert.Equal(t, "Geri", restaurant.RestaurantPizzas[0].Pizza.Name)
		assert.Equal(t, "Emma", restaurant.RestaurantPizzas[1].Pizza.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := service.GetRestaurant(ctx, 999)
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
	})
}

func TestDeleteRestaurant(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	service := NewRestaurantService(db)
	ctx := context.Background()

	target := f.restaurants[0].ID
	require.NoError(t, db.Create(&models.RestaurantPizza{RestaurantID: target, PizzaID: f.pizzas[0].ID, Price: 10}).Error)
	require.NoError(t, db.Create(&models.RestaurantPizza{RestaurantID: f.restaurants[1].ID, PizzaID: f.pizzas[0].ID, Price: 11}).Error)

	require.NoError(t, service.DeleteRestaurant(ctx, target))

	_, err := service.GetRestaurant(ctx, target)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	var orphans, others int64
	db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", target).Count(&orphans)
	db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", f.restaurants[1].ID).Count(&others)
	assert.Zero(t, orphans)
	assert.Equal(t, int64(1), others)

	// Pizzas are never removed by a restaurant delete
	var pizzas int64
	db.Model(&models.Pizza{}).Count(&pizzas)
	assert.Equal(t, int64(2), pizzas)

	assert.ErrorIs(t, service.DeleteRestaurant(ctx, target), ErrRestaurantNotFound)
}

func TestListPizzas(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)
	ctx := context.Background()

	pizzas, err := service.ListPizzas(ctx)
	require.NoError(t, err)
	assert.NotNil(t, pizzas)
	assert.Empty(t, pizzas)

	seedFixtures(t, db)
	pizzas, err = service.ListPizzas(ctx)
	require.NoError(t, err)
	require.Len(t, pizzas, 2)
	assert.Equal(t, "Emma", pizzas[0].Name)
}

func TestCreateRestaurantPizza(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	service := NewRestaurantPizzaService(db)
	ctx := context.Background()

	t.Run("creates and loads both sides", func(t *testing.T) {
		rp, err := service.CreateRestaurantPizza(ctx, RestaurantPizzaInput{
			Price:        50,
			PizzaID:      f.pizzas[0].ID,
			RestaurantID: f.restaurants[0].ID,
		})
		require.NoError(t, err)
		assert.NotZero(t, rp.ID)
		assert.Equal(t, 50, rp.Price)
		require.NotNil(t, rp.Pizza)
		require.NotNil(t, rp.Restaurant)
		assert.Equal(t, "Emma", rp.Pizza.Name)
		assert.Equal(t, "Karen's Pizza Shack", rp.Restaurant.Name)

		var stored models.RestaurantPizza
		require.NoError(t, db.First(&stored, rp.ID).Error)
		assert.Equal(t, 50, stored.Price)
	})

	t.Run("missing restaurant", func(t *testing.T) {
		_, err := service.CreateRestaurantPizza(ctx, RestaurantPizzaInput{Price: 5, PizzaID: f.pizzas[0].ID, RestaurantID: 999})
		assert.ErrorIs(t, err, ErrReferenceNotFound)
	})

	t.Run("missing pizza", func(t *testing.T) {
		_, err := service.CreateRestaurantPizza(ctx, RestaurantPizzaInput{Price: 5, PizzaID: 999, RestaurantID: f.restaurants[0].ID})
		assert.ErrorIs(t, err, ErrReferenceNotFound)
	})

	t.Run("price out of range fails construction", func(t *testing.T) {
		_, err := service.CreateRestaurantPizza(ctx, RestaurantPizzaInput{Price: 1000, PizzaID: f.pizzas[0].ID, RestaurantID: f.restaurants[0].ID})
		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "price", validationErr.Field)

		var count int64
		db.Model(&models.RestaurantPizza{}).Where("price = ?", 1000).Count(&count)
		assert.Zero(t, count)
	})
}
