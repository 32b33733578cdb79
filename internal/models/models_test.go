package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantPizzaValidate(t *testing.T) {
	testCases := []struct {
		name  string
		rp    RestaurantPizza
		field string
	}{
		{name: "lowest price", rp: RestaurantPizza{Price: 1, PizzaID: 1, RestaurantID: 1}},
		{name: "highest price", rp: RestaurantPizza{Price: 999, PizzaID: 1, RestaurantID: 1}},
		{name: "zero price", rp: RestaurantPizza{Price: 0, PizzaID: 1, RestaurantID: 1}, field: "price"},
		{name: "price above range", rp: RestaurantPizza{Price: 1000, PizzaID: 1, RestaurantID: 1}, field: "price"},
		{name: "no restaurant", rp: RestaurantPizza{Price: 10, PizzaID: 1}, field: "restaurant_id"},
		{name: "no pizza", rp: RestaurantPizza{Price: 10, RestaurantID: 1}, field: "pizza_id"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rp.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestPriceErrorMessage(t *testing.T) {
	err := (&RestaurantPizza{Price: 1000, PizzaID: 1, RestaurantID: 1}).Validate()
	assert.EqualError(t, err, "Price must be between 1 and 999")
}

func TestRestaurantDetailResponseNeverNull(t *testing.T) {
	body, err := json.Marshal(Restaurant{ID: 1, Name: "Kiki's Pizza", Address: "address3"}.ToDetailResponse())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Kiki's Pizza","address":"address3","restaurant_pizzas":[]}`, string(body))
}

func TestListResponsesNeverNull(t *testing.T) {
	pizzas, err := json.Marshal(NewPizzaListResponse(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(pizzas))

	restaurants, err := json.Marshal(NewRestaurantListResponse(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(restaurants))
}

func TestRestaurantPizzaToResponse(t *testing.T) {
	rp := RestaurantPizza{
		ID: 3, Price: 12, PizzaID: 2, RestaurantID: 1,
		Pizza:      &Pizza{ID: 2, Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		Restaurant: &Restaurant{ID: 1, Name: "Karen's Pizza Shack", Address: "address1"},
	}

	body, err := json.Marshal(rp.ToResponse())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 3, "price": 12, "pizza_id": 2, "restaurant_id": 1,
		"pizza": {"id": 2, "name": "Geri", "ingredients": "Dough, Tomato Sauce, Cheese, Pepperoni"},
		"restaurant": {"id": 1, "name": "Karen's Pizza Shack", "address": "address1"}
	}`, string(body))

	entry := rp.ToEntryResponse()
	assert.Equal(t, uint(2), entry.Pizza.ID)
}
