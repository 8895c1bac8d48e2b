package config

import (
	"os"
	"strconv"
	"time"

	"gomendel/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Ops      OpsConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Engine   EngineConfig
}

// ServerConfig holds public API server settings
type ServerConfig struct {
	Port            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// OpsConfig holds the internal operations server settings
type OpsConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds usage-store connection settings. URL may be empty:
// the service then keeps usage statistics in memory only.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// CatalogConfig holds the optional trait catalog source
type CatalogConfig struct {
	Path string
}

// EngineConfig holds computation limits
type EngineConfig struct {
	MaxBatchTraits int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8080"),
			RequestTimeout:  getEnvDurationOrDefault("REQUEST_TIMEOUT", 5*time.Second),
			ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Ops: OpsConfig{
			Port:    getEnvOrDefault("OPS_PORT", "8081"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Database: DatabaseConfig{
			URL:             getEnvOrDefault("DATABASE_URL", ""),
			MaxOpenConns:    getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 10),
			ConnMaxLifetime: getEnvDurationOrDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Catalog: CatalogConfig{
			Path: getEnvOrDefault("TRAIT_CATALOG_PATH", ""),
		},
		Engine: EngineConfig{
			MaxBatchTraits: getEnvIntOrDefault("MAX_BATCH_TRAITS", 5),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Server.Port == config.Ops.Port {
		return errors.ConfigInvalid("PORT and OPS_PORT must differ")
	}
	if config.Engine.MaxBatchTraits < 1 {
		return errors.ConfigInvalid("MAX_BATCH_TRAITS must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
