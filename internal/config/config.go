package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fadedpez/balatro/internal/logging"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Environment
	Environment string // "development" or "production"

	// Logging
	LogLevel logging.Level
	LogFile  string // Empty means stderr

	// Deal
	Seed    int64
	HasSeed bool // Seed was set explicitly; deals are reproducible

	// Output
	NoColor bool
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the current process environment without touching .env files
func FromEnv() (*Config, error) {
	cfg := &Config{
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		LogFile:     os.Getenv("LOG_FILE"),
		NoColor:     os.Getenv("NO_COLOR") != "",
	}

	// The terminal is shared with the game screen, so only problems are logged there.
	// A log file gets the full detail.
	defaultLevel := "WARN"
	if cfg.LogFile != "" {
		defaultLevel = "INFO"
		if cfg.IsDevelopment() {
			defaultLevel = "DEBUG"
		}
	}
	level, err := logging.ParseLevel(getEnvWithDefault("LOG_LEVEL", defaultLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if raw := os.Getenv("BALATRO_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid BALATRO_SEED %q: %w", raw, err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks if all configuration values are usable
func (c *Config) validate() error {
	switch c.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", c.Environment)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
