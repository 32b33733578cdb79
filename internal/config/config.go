package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port            int           `json:"port"`
	Host            string        `json:"host"`
	Environment     string        `json:"environment"`
	ServiceName     string        `json:"service_name"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Database configuration
	DBDriver    string `json:"db_driver"`
	DBPath      string `json:"db_path"`
	DatabaseURL string `json:"database_url"`
	DBHost      string `json:"db_host"`
	DBPort      string `json:"db_port"`
	DBName      string `json:"db_name"`
	DBUser      string `json:"db_user"`
	DBPassword  string `json:"db_password"`
	DBSSLMode   string `json:"db_ssl_mode"`
	SeedData    bool   `json:"seed_data"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// HTTP extras
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`
	TracingEnabled     bool     `json:"tracing_enabled"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, DBDriver: %s, DBPath: %s, DatabaseURL: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], LogLevel: %s, SeedData: %t, TracingEnabled: %t}",
		c.Port, c.Host, c.Environment, c.DBDriver, c.DBPath, maskDatabaseURL(c.DatabaseURL), c.DBHost, c.DBName, c.DBUser, c.LogLevel, c.SeedData, c.TracingEnabled)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if the port is not a number, the driver is unknown
// or DATABASE_URL is set but malformed
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "5555"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	switch driver {
	case "sqlite", "postgres", "postgresql":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres)", driver)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL != "" {
		if _, err := url.ParseRequestURI(dbURL); err != nil {
			return nil, fmt.Errorf("invalid DATABASE_URL format: %w", err)
		}
	}

	config := &Config{
		Port:               port,
		Host:               GetEnvWithDefault("APP_HOST", "0.0.0.0"),
		Environment:        GetEnvWithDefault("APP_ENV", "development"),
		ServiceName:        GetEnvWithDefault("SERVICE_NAME", "restaurant-pizza-api"),
		ShutdownTimeout:    time.Duration(GetEnvAsType("SHUTDOWN_TIMEOUT", 10)) * time.Second,
		DBDriver:           driver,
		DBPath:             GetEnvWithDefault("DB_PATH", "restaurants.db"),
		DatabaseURL:        dbURL,
		DBHost:             GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:             GetEnvWithDefault("DB_PORT", "5432"),
		DBName:             GetEnvWithDefault("DB_NAME", "restaurants"),
		DBUser:             GetEnvWithDefault("DB_USER", "user"),
		DBPassword:         GetEnvWithDefault("DB_PASSWORD", "password"),
		DBSSLMode:          GetEnvWithDefault("DB_SSLMODE", "disable"),
		SeedData:           GetEnvAsType("SEED_DATA", true),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		CORSAllowedOrigins: splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		TracingEnabled:     GetEnvAsType("OTEL_ENABLED", false),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// ResolveLogLevel returns LOG_LEVEL when it is set and valid,
// otherwise the default level for the environment
func (c *Config) ResolveLogLevel() logrus.Level {
	if c.LogLevel != "" {
		level, err := logrus.ParseLevel(c.LogLevel)
		if err == nil {
			return level
		}
		log.Warnf("Invalid LOG_LEVEL %q, using the %s default", c.LogLevel, c.Environment)
	}
	return LevelForEnvironment(c.Environment)
}

// LevelForEnvironment maps APP_ENV to the default log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
