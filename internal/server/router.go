package server

import (
	"fmt"
	"net/http"
	"slices"

	_ "github.com/franciscosanchezn/restaurant-pizza-api/docs" // Import generated docs
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

// Controllers groups every HTTP handler the router mounts
type Controllers struct {
	Restaurants      controllers.RestaurantController
	Pizzas           controllers.PizzaController
	RestaurantPizzas controllers.RestaurantPizzaController
	Health           *controllers.HealthController
}

// NewControllers builds the services and controllers on top of db
func NewControllers(db *gorm.DB, serviceName string) (Controllers, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return Controllers{}, fmt.Errorf("getting database handle: %w", err)
	}

	return Controllers{
		Restaurants:      controllers.NewRestaurantController(services.NewRestaurantService(db)),
		Pizzas:           controllers.NewPizzaController(services.NewPizzaService(db)),
		RestaurantPizzas: controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db)),
		Health:           controllers.NewHealthController(sqlDB, serviceName),
	}, nil
}

// Options configures the router middleware chain
type Options struct {
	ServiceName    string
	Logger         *logrus.Logger
	Registry       *prometheus.Registry
	AllowedOrigins []string
	Tracing        bool
}

// NewRouter initializes the Gin router with middleware and routes
func NewRouter(c Controllers, opts Options) (*gin.Engine, error) {
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	metrics, err := middleware.NewMetrics(opts.Registry)
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(opts.Logger))
	router.Use(gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		opts.Logger.WithFields(logrus.Fields{
			"request_id": ctx.GetString(middleware.RequestIDKey),
			"panic":      recovered,
		}).Error("Recovered from panic")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.NewErrorResponse("Internal server error"))
	}))
	if opts.Tracing {
		router.Use(otelgin.Middleware(opts.ServiceName))
	}
	router.Use(metrics.Handler())
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	setupRoutes(router, c, opts.Registry)

	return router, nil
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, c Controllers, reg *prometheus.Registry) {
	router.GET("/health", c.Health.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	router.GET("/restaurants", c.Restaurants.ListRestaurants)
	router.GET("/restaurants/:id", c.Restaurants.GetRestaurant)
	router.DELETE("/restaurants/:id", c.Restaurants.DeleteRestaurant)

	router.GET("/pizzas", c.Pizzas.ListPizzas)

	router.POST("/restaurant_pizzas", c.RestaurantPizzas.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
