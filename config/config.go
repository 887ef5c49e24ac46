package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	App   AppConfig
	Store StoreConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Environment string
	Port        string
}

// StoreConfig holds the thresholds used by the dashboard statistics
type StoreConfig struct {
	LowStockThreshold  int
	ExpiringWindowDays int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist in production
		fmt.Println("No .env file found")
	}

	config := &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
		},
		Store: StoreConfig{
			LowStockThreshold:  getEnvInt("LOW_STOCK_THRESHOLD", 10),
			ExpiringWindowDays: getEnvInt("EXPIRING_WINDOW_DAYS", 90),
		},
	}

	return config, nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an integer environment variable with a fallback value
func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
