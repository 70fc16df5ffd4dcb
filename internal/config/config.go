package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	FunctionKey string
	Database    DatabaseConfig
	RateLimit   RateLimitConfig
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and an optional .env file.
// Missing database settings are not an error here: they surface as a
// configuration failure when a request first needs a connection, so a
// misconfigured host still answers requests instead of crashing at startup.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("AZURE_SQL_DRIVER", DefaultDriver)
	viper.SetDefault("AZURE_SQL_DATABASE", DefaultDatabase)
	viper.SetDefault("AZURE_SQL_CONNECT_TIMEOUT", 60)
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		FunctionKey: viper.GetString("FUNCTION_KEY"),
		Database: DatabaseConfig{
			Server:         viper.GetString("AZURE_SQL_CONNECTION_STRING"),
			User:           viper.GetString("AZURE_SQL_DB_USER"),
			Password:       viper.GetString("AZURE_SQL_DB_PASSWORD"),
			Driver:         viper.GetString("AZURE_SQL_DRIVER"),
			Database:       viper.GetString("AZURE_SQL_DATABASE"),
			ConnectTimeout: viper.GetInt("AZURE_SQL_CONNECT_TIMEOUT"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
