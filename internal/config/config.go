package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Seed    SeedConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Env      string
	LogLevel string
}

// StorageConfig holds the snapshot database location
type StorageConfig struct {
	DBPath string
}

// SeedConfig holds the optional roster override used when seeding
type SeedConfig struct {
	RosterFile string
}

func Load() (*Config, error) {
	// A .env file is optional for a local tool; environment variables win
	// either way.
	_ = godotenv.Load()

	config := &Config{
		App: AppConfig{
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			DBPath: getEnv("SHIFTDESK_DB_PATH", "shiftdesk.db"),
		},
		Seed: SeedConfig{
			RosterFile: getEnv("SHIFTDESK_SEED_FILE", ""),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Storage.DBPath == "" {
		return fmt.Errorf("SHIFTDESK_DB_PATH is required")
	}
	switch c.App.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %s", c.App.LogLevel)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
