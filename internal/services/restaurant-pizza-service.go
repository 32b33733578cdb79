package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaInput is a validated request to put a pizza on a restaurant's menu
type RestaurantPizzaInput struct {
	Price        int
	PizzaID      uint
	RestaurantID uint
}

// RestaurantPizzaService provides methods to manage restaurant pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza checks both references exist, inserts the row and
	// returns it with Pizza and Restaurant loaded
	CreateRestaurantPizza(ctx context.Context, input RestaurantPizzaInput) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, input RestaurantPizzaInput) (models.RestaurantPizza, error) {
	db := s.db.WithContext(ctx)

	var pizza models.Pizza
	pizzaErr := db.First(&pizza, input.PizzaID).Error
	var restaurant models.Restaurant
	restaurantErr := db.First(&restaurant, input.RestaurantID).Error

	for _, err := range []error{pizzaErr, restaurantErr} {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RestaurantPizza{}, ErrReferenceNotFound
		}
		if err != nil {
			return models.RestaurantPizza{}, fmt.Errorf("looking up references: %w", err)
		}
	}

	rp := models.RestaurantPizza{
		Price:        input.Price,
		PizzaID:      pizza.ID,
		RestaurantID: restaurant.ID,
	}
	// Omit keeps gorm from upserting the loaded parents
	if err := db.Omit("Pizza", "Restaurant").Create(&rp).Error; err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			return models.RestaurantPizza{}, validationErr
		}
		return models.RestaurantPizza{}, fmt.Errorf("creating restaurant pizza: %w", err)
	}

	rp.Pizza = &pizza
	rp.Restaurant = &restaurant
	return rp, nil
}
