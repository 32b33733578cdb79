package database

import (
	"fmt"
	"strings"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// PostgreSQL-specific configuration. URL wins over the discrete fields when set.
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string

	// MaxRetries bounds the connection attempts, defaults to 5
	MaxRetries int
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds a Data Source Name string based on the driver.
// SQLite connections always get foreign key enforcement so cascades apply.
func (c *DatabaseConfig) DSN() string {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql":
		if c.URL != "" {
			return c.URL
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		path := c.Path
		if path == "" {
			path = ":memory:"
		}
		if strings.Contains(path, "_foreign_keys=") {
			return path
		}
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + "_foreign_keys=on"
	default:
		return ""
	}
}

// InMemory reports whether the configuration points at an in-memory SQLite database
func (c *DatabaseConfig) InMemory() bool {
	driver := strings.ToLower(c.Driver)
	if driver != "sqlite" && driver != "" {
		return false
	}
	return c.Path == "" || strings.Contains(c.Path, ":memory:") || strings.Contains(c.Path, "mode=memory")
}
