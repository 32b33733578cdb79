package models

// Pizza represents a pizza on the shared menu
type Pizza struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Ingredients string `json:"ingredients"`

	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// PizzaResponse is the serialized form of a pizza
type PizzaResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// ToResponse serializes the pizza without its associations
func (p Pizza) ToResponse() PizzaResponse {
	return PizzaResponse{
		ID:          p.ID,
		Name:        p.Name,
		Ingredients: p.Ingredients,
	}
}

// NewPizzaListResponse serializes a list of pizzas, always returning a non-nil slice
func NewPizzaListResponse(pizzas []Pizza) []PizzaResponse {
	out := make([]PizzaResponse, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, p.ToResponse())
	}
	return out
}
