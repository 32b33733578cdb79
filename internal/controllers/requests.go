package controllers

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
)

// Messages returned to clients, kept verbatim for API compatibility
const (
	MsgInvalidBody           = "Invalid request body"
	MsgMissingValues         = "Missing values in the request."
	MsgInvalidPrice          = "'Price' must be a number between 1 and 999."
	MsgReferenceNotFound     = "Pizza or Restaurant does not exist"
	MsgRestaurantNotFound    = "Restaurant does not exist."
	MsgDeleteNotFound        = "The restaurant does not exist"
	MsgCreateFailed          = "Failed to create restaurant pizza"
	MsgListRestaurantsFailed = "Failed to retrieve restaurants"
	MsgGetRestaurantFailed   = "Failed to retrieve restaurant"
	MsgDeleteFailed          = "Failed to delete restaurant"
	MsgListPizzasFailed      = "Failed to retrieve pizzas"
)

// RequestValidationError describes a request that was rejected before reaching the store
type RequestValidationError struct {
	Message string
}

func (e *RequestValidationError) Error() string {
	return e.Message
}

// CreateRestaurantPizzaRequest is the body of POST /restaurant_pizzas.
// Fields stay raw so presence and type can be checked in a fixed order.
type CreateRestaurantPizzaRequest struct {
	Price        json.RawMessage `json:"price" swaggertype:"string" example:"50"`
	PizzaID      json.RawMessage `json:"pizza_id" swaggertype:"integer" example:"1"`
	RestaurantID json.RawMessage `json:"restaurant_id" swaggertype:"integer" example:"1"`
}

// Validate turns the raw request into a typed input.
// Checks run in order: presence of all fields, digit-string price and range, id format.
func (r CreateRestaurantPizzaRequest) Validate() (services.RestaurantPizzaInput, error) {
	price, priceErr := decodeLoose(r.Price)
	pizzaID, pizzaErr := decodeLoose(r.PizzaID)
	restaurantID, restaurantErr := decodeLoose(r.RestaurantID)
	if priceErr != nil || pizzaErr != nil || restaurantErr != nil ||
		!isTruthy(price) || !isTruthy(pizzaID) || !isTruthy(restaurantID) {
		return services.RestaurantPizzaInput{}, &RequestValidationError{Message: MsgMissingValues}
	}

	p, ok := parsePrice(price)
	if !ok {
		return services.RestaurantPizzaInput{}, &RequestValidationError{Message: MsgInvalidPrice}
	}

	pid, pizzaOK := parseID(pizzaID)
	rid, restaurantOK := parseID(restaurantID)
	if !pizzaOK || !restaurantOK {
		return services.RestaurantPizzaInput{}, &RequestValidationError{Message: MsgReferenceNotFound}
	}

	return services.RestaurantPizzaInput{Price: p, PizzaID: pid, RestaurantID: rid}, nil
}

func decodeLoose(raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// isTruthy treats null, "", 0, false and empty containers as missing
func isTruthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case bool:
		return val
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}

// parsePrice only accepts a string of decimal digits, JSON numbers are rejected
func parsePrice(v any) (int, bool) {
	val, ok := v.(string)
	if !ok || !isDigits(val) {
		return 0, false
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil || n < models.MinPrice || n > models.MaxPrice {
		return 0, false
	}
	return int(n), true
}

func parseID(v any) (uint, bool) {
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case json.Number:
		s = val.String()
	default:
		return 0, false
	}
	if !isDigits(s) {
		return 0, false
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
