package database

import (
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseConfigDSN(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite file gets foreign keys",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "restaurants.db"},
			expected: "restaurants.db?_foreign_keys=on",
		},
		{
			name:     "sqlite with existing query",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "file:test.db?cache=shared"},
			expected: "file:test.db?cache=shared&_foreign_keys=on",
		},
		{
			name:     "empty path defaults to memory",
			cfg:      DatabaseConfig{},
			expected: ":memory:?_foreign_keys=on",
		},
		{
			name:     "postgres fields",
			cfg:      DatabaseConfig{Driver: "postgres", Host: "db", User: "u", Password: "p", Name: "n", Port: "5432", SSLMode: "disable"},
			expected: "host=db user=u password=p dbname=n port=5432 sslmode=disable",
		},
		{
			name:     "postgres url wins",
			cfg:      DatabaseConfig{Driver: "postgresql", URL: "postgres://u:p@db/n", Host: "ignored"},
			expected: "postgres://u:p@db/n",
		},
		{
			name:     "unknown driver",
			cfg:      DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.DSN())
		})
	}
}

func TestDatabaseConfigStringMasksPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", Password: "hunter2"}
	assert.NotContains(t, cfg.String(), "hunter2")
	assert.Contains(t, cfg.String(), "[REDACTED]")
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestMigrateAndSeed(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxRetries: 1})
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db))
	require.NoError(t, Seed(db))

	var restaurants, pizzas, prices int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&prices)
	assert.Equal(t, int64(3), restaurants)
	assert.Equal(t, int64(3), pizzas)
	assert.Equal(t, int64(3), prices)

	// Seeding twice must not duplicate rows
	require.NoError(t, Seed(db))
	db.Model(&models.Restaurant{}).Count(&restaurants)
	assert.Equal(t, int64(3), restaurants)
}

func TestForeignKeysCascadeOnSQLite(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxRetries: 1})
	require.NoError(t, err)
	defer Close(db)
	require.NoError(t, Migrate(db))
	require.NoError(t, Seed(db))

	var restaurant models.Restaurant
	require.NoError(t, db.First(&restaurant).Error)

	// A raw delete bypasses the service layer, so only the schema cascade can clean up
	require.NoError(t, db.Exec("DELETE FROM restaurants WHERE id = ?", restaurant.ID).Error)

	var orphans int64
	db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", restaurant.ID).Count(&orphans)
	assert.Zero(t, orphans)
}
