// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, catalog, and cache settings

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Catalog contains backing-source and cache configuration
	Catalog CatalogConfig

	// Logging contains logging configuration
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the allowed number of requests per minute per client
	RateLimit int
}

// CatalogConfig holds backing-source and cache configuration
type CatalogConfig struct {
	// Path is the backing catalog file
	Path string

	// SnapshotTTLSeconds is how long a loaded snapshot stays valid
	SnapshotTTLSeconds int

	// StatsTTLSeconds is how long computed statistics stay valid,
	// configured independently of the snapshot TTL
	StatsTTLSeconds int

	// QueryCacheCleanupSeconds is the purge interval for the memoization cache
	QueryCacheCleanupSeconds int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the minimum log level (debug/info/warn/error)
	Level string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 100),
		},
		Catalog: CatalogConfig{
			Path:                     getEnvOrDefault("CATALOG_PATH", "data/items.json"),
			SnapshotTTLSeconds:       getEnvAsIntOrDefault("SNAPSHOT_TTL", 30),
			StatsTTLSeconds:          getEnvAsIntOrDefault("STATS_TTL", 60),
			QueryCacheCleanupSeconds: getEnvAsIntOrDefault("QUERY_CACHE_CLEANUP", 600),
		},
		Logging: LoggingConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
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

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Catalog.Path == "" {
		return errors.New("catalog path cannot be empty")
	}

	if c.Catalog.SnapshotTTLSeconds < 1 {
		return errors.New("snapshot TTL must be at least 1 second")
	}

	if c.Catalog.StatsTTLSeconds < 1 {
		return errors.New("stats TTL must be at least 1 second")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("log level must be one of debug, info, warn, error")
	}

	return nil
}
