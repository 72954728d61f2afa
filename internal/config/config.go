package config

import (
	"fmt"
	"os"
	"strconv"

	"storefront/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Catalog CatalogConfig
	Logger  LoggerConfig
	UI      UIConfig
}

// CatalogConfig holds catalogue source configuration.
type CatalogConfig struct {
	// Path to a JSON catalogue file. Empty means the built-in seed.
	Path string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// UIConfig holds presentation configuration handed to the view constructor.
// The theme is plain data here, replacing the global theme singleton the
// app previously relied on.
type UIConfig struct {
	Theme          model.Theme
	CurrencySymbol string
	// CurrencyRate converts base-unit prices to the display currency.
	CurrencyRate float64
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", ""),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		UI: UIConfig{
			Theme:          model.Theme(getEnv("THEME", string(model.ThemeDark))),
			CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₹"),
			CurrencyRate:   getEnvAsFloat("CURRENCY_RATE", 83.0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if !c.UI.Theme.Valid() {
		return fmt.Errorf("invalid theme: %s (must be dark or light)", c.UI.Theme)
	}

	if c.UI.CurrencySymbol == "" {
		return fmt.Errorf("currency symbol is required")
	}

	if c.UI.CurrencyRate <= 0 {
		return fmt.Errorf("currency rate must be positive")
	}

	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
