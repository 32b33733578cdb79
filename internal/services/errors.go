package services

import "errors"

var (
	// ErrRestaurantNotFound is returned when no restaurant has the requested id
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrReferenceNotFound is returned when a restaurant pizza points at a missing pizza or restaurant
	ErrReferenceNotFound = errors.New("pizza or restaurant not found")
)
