package database

import (
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the restaurants, pizzas and restaurant_pizzas tables
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	if err := db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{}); err != nil {
		return fmt.Errorf("auto-migrating schema: %w", err)
	}
	return nil
}

// Seed fills the restaurants and pizzas tables when both are empty.
// Running it against a populated database is a no-op.
func Seed(db *gorm.DB) error {
	var restaurants, pizzas int64
	if err := db.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return fmt.Errorf("counting restaurants: %w", err)
	}
	if err := db.Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return fmt.Errorf("counting pizzas: %w", err)
	}
	if restaurants > 0 || pizzas > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")
	return db.Transaction(func(tx *gorm.DB) error {
		seedRestaurants := []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
			{Name: "Kiki's Pizza", Address: "address3"},
		}
		if err := tx.Create(&seedRestaurants).Error; err != nil {
			return fmt.Errorf("seeding restaurants: %w", err)
		}

		seedPizzas := []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
			{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
		}
		if err := tx.Create(&seedPizzas).Error; err != nil {
			return fmt.Errorf("seeding pizzas: %w", err)
		}

		seedPrices := []models.RestaurantPizza{
			{RestaurantID: seedRestaurants[0].ID, PizzaID: seedPizzas[0].ID, Price: 1},
			{RestaurantID: seedRestaurants[1].ID, PizzaID: seedPizzas[1].ID, Price: 4},
			{RestaurantID: seedRestaurants[2].ID, PizzaID: seedPizzas[2].ID, Price: 5},
		}
		if err := tx.Create(&seedPrices).Error; err != nil {
			return fmt.Errorf("seeding restaurant pizzas: %w", err)
		}

		log.Info("Database seeded successfully")
		return nil
	})
}
