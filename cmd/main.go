package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/server"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Restaurant Pizza API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants sell them at
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	shutdownTracing, err := telemetry.Setup(configuration.ServiceName, configuration.TracingEnabled, os.Stdout)
	checkPanicErr(err)

	// Initialize database connection
	db := setupDatabase(configuration)

	ctrls, err := server.NewControllers(db, configuration.ServiceName)
	checkPanicErr(err)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router, err := server.NewRouter(ctrls, server.Options{
		ServiceName:    configuration.ServiceName,
		Logger:         log.StandardLogger(),
		Registry:       registry,
		AllowedOrigins: configuration.CORSAllowedOrigins,
		Tracing:        configuration.TracingEnabled,
	})
	checkPanicErr(err)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%v:%d", configuration.Host, configuration.Port),
		Handler: router,
	}

	go func() {
		log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), configuration.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
	if err := shutdownTracing(ctx); err != nil {
		log.WithError(err).Warn("Failed to flush traces")
	}
	if err := database.Close(db); err != nil {
		log.WithError(err).Warn("Failed to close database")
	}
	log.Info("Server shutdown complete")
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the loggers with a JSON formatter.
// LOG_LEVEL wins when set, otherwise the level follows APP_ENV.
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})

	level := conf.ResolveLogLevel()
	log.SetLevel(level)
	database.SetLogLevel(level)
	controllers.SetLogLevel(level)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase connects, migrates the schema and seeds it when empty
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		URL:      conf.DatabaseURL,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if conf.SeedData {
		checkPanicErr(database.Seed(db))
	}
	return db
}
