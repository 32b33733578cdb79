package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// ListRestaurants retrieves all restaurants
	ListRestaurants(c *gin.Context)
	// GetRestaurant retrieves a restaurant with its pizzas
	GetRestaurant(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its pizza prices
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) *restaurantController {
	return &restaurantController{service: service}
}

// ListRestaurants godoc
// @Summary List restaurants
// @Description Get every restaurant without its pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) ListRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.ListRestaurants(ctx.Request.Context())
	if err != nil {
		requestLog(ctx).WithError(err).Error("Failed to list restaurants")
		respondError(ctx, http.StatusInternalServerError, MsgListRestaurantsFailed)
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantListResponse(restaurants))
}

// GetRestaurant godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant with the pizzas it sells and their prices
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetailResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		respondError(ctx, http.StatusNotFound, MsgRestaurantNotFound)
		return
	}

	restaurant, err := c.service.GetRestaurant(ctx.Request.Context(), id)
	if errors.Is(err, services.ErrRestaurantNotFound) {
		respondError(ctx, http.StatusNotFound, MsgRestaurantNotFound)
		return
	}
	if err != nil {
		requestLog(ctx).WithError(err).WithField("restaurant_id", id).Error("Failed to get restaurant")
		respondError(ctx, http.StatusInternalServerError, MsgGetRestaurantFailed)
		return
	}
	ctx.JSON(http.StatusOK, restaurant.ToDetailResponse())
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every restaurant pizza that references it
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		respondError(ctx, http.StatusNotFound, MsgDeleteNotFound)
		return
	}

	err := c.service.DeleteRestaurant(ctx.Request.Context(), id)
	if errors.Is(err, services.ErrRestaurantNotFound) {
		respondError(ctx, http.StatusNotFound, MsgDeleteNotFound)
		return
	}
	if err != nil {
		requestLog(ctx).WithError(err).WithField("restaurant_id", id).Error("Failed to delete restaurant")
		respondError(ctx, http.StatusInternalServerError, MsgDeleteFailed)
		return
	}

	requestLog(ctx).WithField("restaurant_id", id).Info("Restaurant deleted")
	ctx.Status(http.StatusNoContent)
}
