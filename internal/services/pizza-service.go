package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// ListPizzas retrieves all pizzas ordered by id
	ListPizzas(ctx context.Context) ([]models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) ListPizzas(ctx context.Context) ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("listing pizzas: %w", err)
	}
	return pizzas, nil
}
