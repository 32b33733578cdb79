package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// ListPizzas retrieves all pizzas
	ListPizzas(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) *pizzaController {
	return &pizzaController{service: service}
}

// ListPizzas godoc
// @Summary List pizzas
// @Description Get every pizza on the shared menu
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *pizzaController) ListPizzas(ctx *gin.Context) {
	pizzas, err := c.service.ListPizzas(ctx.Request.Context())
	if err != nil {
		requestLog(ctx).WithError(err).Error("Failed to list pizzas")
		respondError(ctx, http.StatusInternalServerError, MsgListPizzasFailed)
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaListResponse(pizzas))
}
