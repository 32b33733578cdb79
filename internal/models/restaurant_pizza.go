package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	// MinPrice and MaxPrice bound the price of a pizza at a restaurant, inclusive
	MinPrice = 1
	MaxPrice = 999
)

var validate = validator.New()

// RestaurantPizza links a pizza to a restaurant with the price it is sold at
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	Price        int  `gorm:"not null" json:"price" validate:"gte=1,lte=999"`
	RestaurantID uint `gorm:"not null;index" json:"restaurant_id" validate:"required"`
	PizzaID      uint `gorm:"not null;index" json:"pizza_id" validate:"required"`

	Restaurant *Restaurant `json:"-" validate:"-"`
	Pizza      *Pizza      `json:"-" validate:"-"`
}

// RestaurantPizzaEntryResponse is an association as nested under a restaurant
type RestaurantPizzaEntryResponse struct {
	ID           uint           `json:"id"`
	Price        int            `json:"price"`
	PizzaID      uint           `json:"pizza_id"`
	RestaurantID uint           `json:"restaurant_id"`
	Pizza        *PizzaResponse `json:"pizza"`
}

// RestaurantPizzaResponse is a standalone association with both sides summarized
type RestaurantPizzaResponse struct {
	ID           uint                `json:"id"`
	Price        int                 `json:"price"`
	PizzaID      uint                `json:"pizza_id"`
	RestaurantID uint                `json:"restaurant_id"`
	Pizza        *PizzaResponse      `json:"pizza"`
	Restaurant   *RestaurantResponse `json:"restaurant"`
}

// BeforeCreate runs the domain validation before the row is inserted
func (rp *RestaurantPizza) BeforeCreate(tx *gorm.DB) error {
	return rp.Validate()
}

// Validate checks the price range and the presence of both references.
// It returns a *ValidationError describing the first failing field.
func (rp *RestaurantPizza) Validate() error {
	err := validate.Struct(rp)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "Price":
		return NewValidationError("price", "Price must be between 1 and 999")
	case "RestaurantID":
		return NewValidationError("restaurant_id", "A restaurant pizza must belong to a restaurant")
	case "PizzaID":
		return NewValidationError("pizza_id", "A restaurant pizza must reference a pizza")
	default:
		return NewValidationError(fe.Field(), fe.Error())
	}
}

// ToEntryResponse serializes the association for nesting under its restaurant
func (rp RestaurantPizza) ToEntryResponse() RestaurantPizzaEntryResponse {
	entry := RestaurantPizzaEntryResponse{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
	}
	if rp.Pizza != nil {
		pizza := rp.Pizza.ToResponse()
		entry.Pizza = &pizza
	}
	return entry
}

// ToResponse serializes the association with pizza and restaurant summaries
func (rp RestaurantPizza) ToResponse() RestaurantPizzaResponse {
	resp := RestaurantPizzaResponse{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
	}
	if rp.Pizza != nil {
		pizza := rp.Pizza.ToResponse()
		resp.Pizza = &pizza
	}
	if rp.Restaurant != nil {
		restaurant := rp.Restaurant.ToResponse()
		resp.Restaurant = &restaurant
	}
	return resp
}
