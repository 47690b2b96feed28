// Package config handles configuration loading for the todo service.
package config

import (
	"log"
	"os"
	"time"
)

// Config holds all configuration for the todo service.
type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	JWTSecret     string
	TokenExpiry   time.Duration
	BreachAPIURL  string
	BreachTimeout time.Duration
	Port          string
	Environment   string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		DBHost:        GetEnvRequired("DB_HOST"),
		DBPort:        GetEnvRequired("DB_PORT"),
		DBUser:        GetEnvRequired("DB_USER"),
		DBPassword:    GetEnvRequired("DB_PASSWORD"),
		DBName:        GetEnvRequired("DB_NAME"),
		JWTSecret:     GetEnvRequired("JWT_SECRET"),
		TokenExpiry:   parseDuration(GetEnv("JWT_EXPIRY", "20m"), 20*time.Minute),
		BreachAPIURL:  GetEnv("BREACH_API_URL", "https://api.pwnedpasswords.com/range/"),
		BreachTimeout: parseDuration(GetEnv("BREACH_TIMEOUT", "10s"), 10*time.Second),
		Port:          GetEnv("PORT", "8080"),
		Environment:   GetEnv("ENVIRONMENT", "development"),
	}
}

// GetEnv returns the value of the environment variable or a default.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvRequired returns the value of the environment variable or exits
// the process when it is not set.
func GetEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
