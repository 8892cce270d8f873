// ABOUTME: Configuration management for the discovery engine with env support
// ABOUTME: Defines configuration structures for discovery, logging, and output

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all engine configuration
type Config struct {
	// Discovery contains discovery pipeline configuration
	Discovery DiscoveryConfig

	// Log contains logging configuration
	Log LogConfig
}

// DiscoveryConfig holds discovery pipeline configuration
type DiscoveryConfig struct {
	// Concurrency is the worker pool size; 0 derives it from available parallelism
	Concurrency int

	// FetchTimeoutSeconds bounds each HTTP fetch
	FetchTimeoutSeconds int

	// RequestsPerSecond caps outbound request rate; 0 disables pacing
	RequestsPerSecond float64
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum log level (debug/info/warn/error)
	Level string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Discovery: DiscoveryConfig{
			Concurrency:         getEnvAsIntOrDefault("RSSMINER_CONCURRENCY", 0),
			FetchTimeoutSeconds: getEnvAsIntOrDefault("RSSMINER_FETCH_TIMEOUT", 10),
			RequestsPerSecond:   getEnvAsFloatOrDefault("RSSMINER_REQUESTS_PER_SECOND", 0),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("RSSMINER_LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Discovery.Concurrency < 0 {
		return errors.New("concurrency must not be negative")
	}

	if c.Discovery.FetchTimeoutSeconds < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Discovery.RequestsPerSecond < 0 {
		return errors.New("requests per second must not be negative")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log level must be one of debug, info, warn, error")
	}

	return nil
}
