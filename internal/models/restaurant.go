package models

// Restaurant represents a restaurant and the pizzas it sells
type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`

	// Deleting a restaurant removes its price list.
	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// RestaurantResponse is the list form of a restaurant
type RestaurantResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantDetailResponse is a restaurant with its nested pizzas
type RestaurantDetailResponse struct {
	ID               uint                           `json:"id"`
	Name             string                         `json:"name"`
	Address          string                         `json:"address"`
	RestaurantPizzas []RestaurantPizzaEntryResponse `json:"restaurant_pizzas"`
}

// ToResponse serializes the restaurant without its associations
func (r Restaurant) ToResponse() RestaurantResponse {
	return RestaurantResponse{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
	}
}

// ToDetailResponse serializes the restaurant including every preloaded association.
// Associations must have their Pizza preloaded.
func (r Restaurant) ToDetailResponse() RestaurantDetailResponse {
	entries := make([]RestaurantPizzaEntryResponse, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		entries = append(entries, rp.ToEntryResponse())
	}
	return RestaurantDetailResponse{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: entries,
	}
}

// NewRestaurantListResponse serializes a list of restaurants, always returning a non-nil slice
func NewRestaurantListResponse(restaurants []Restaurant) []RestaurantResponse {
	out := make([]RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, r.ToResponse())
	}
	return out
}
