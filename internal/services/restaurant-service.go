package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// ListRestaurants retrieves all restaurants ordered by id
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurant retrieves a restaurant with its pizzas and their prices
	GetRestaurant(ctx context.Context, id uint) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant together with its restaurant pizzas
	DeleteRestaurant(ctx context.Context, id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("listing restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurant(ctx context.Context, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("getting restaurant %d: %w", id, err)
	}
	return restaurant, nil
}

// DeleteRestaurant removes the associations explicitly so the cascade holds
// even on databases where foreign keys are not enforced
func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.Select("id").First(&restaurant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRestaurantNotFound
			}
			return fmt.Errorf("looking up restaurant %d: %w", id, err)
		}

		if err := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return fmt.Errorf("deleting pizzas of restaurant %d: %w", id, err)
		}
		if err := tx.Delete(&models.Restaurant{}, id).Error; err != nil {
			return fmt.Errorf("deleting restaurant %d: %w", id, err)
		}
		return nil
	})
}
