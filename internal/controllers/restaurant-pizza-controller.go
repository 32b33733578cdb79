package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza adds a pizza to a restaurant's menu
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) *restaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Add a pizza to a restaurant
// @Description Create a restaurant pizza linking an existing pizza and restaurant with a price
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Price and references"
// @Success 201 {object} models.RestaurantPizzaResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	input, err := req.Validate()
	if err != nil {
		respondError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), input)
	if err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.Is(err, services.ErrReferenceNotFound):
			respondError(ctx, http.StatusBadRequest, MsgReferenceNotFound)
		case errors.As(err, &validationErr):
			requestLog(ctx).WithField("field", validationErr.Field).Warn(validationErr.Message)
			respondError(ctx, http.StatusInternalServerError, validationErr.Message)
		default:
			requestLog(ctx).WithError(err).Error("Failed to create restaurant pizza")
			respondError(ctx, http.StatusInternalServerError, MsgCreateFailed)
		}
		return
	}

	requestLog(ctx).WithFields(logrus.Fields{
		"restaurant_pizza_id": created.ID,
		"restaurant_id":       created.RestaurantID,
		"pizza_id":            created.PizzaID,
	}).Info("Restaurant pizza created")
	ctx.JSON(http.StatusCreated, created.ToResponse())
}
