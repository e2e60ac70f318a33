package domain

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Hotel    HotelConfig   `toml:"hotel"`
	Log      LogConfig     `toml:"log"`
	Pricing  PricingConfig `toml:"pricing"`
	Display  DisplayConfig `toml:"display"`
}

// HotelConfig holds settings from the [hotel] section.
type HotelConfig struct {
	Name     string `toml:"name,omitempty"`     // Shown in the menu header and the closing line
	Currency string `toml:"currency,omitempty"` // Label printed before every amount
}

// PricingConfig holds settings from the [pricing] section.
type PricingConfig struct {
	RoundPlaces int `toml:"round_places"` // Decimal places kept for tax and totals
}

// DisplayConfig holds settings from the [display] section.
type DisplayConfig struct {
	Color bool `toml:"color"` // Styled output; false prints plain text
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Dir   string `toml:"dir,omitempty"`   // Log directory; empty disables logging
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// Default configuration values.
const (
	DefaultHotelName   = "Makkah Hotel"
	DefaultCurrency    = "Rs."
	DefaultRoundPlaces = 2
	DefaultLogLevel    = "info"
	MaxRoundPlaces     = 8
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Hotel: HotelConfig{
			Name:     DefaultHotelName,
			Currency: DefaultCurrency,
		},
		Pricing: PricingConfig{
			RoundPlaces: DefaultRoundPlaces,
		},
		Display: DisplayConfig{
			Color: true,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Hotel.Name) == "" {
		return fmt.Errorf("%w: hotel.name must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Hotel.Currency) == "" {
		return fmt.Errorf("%w: hotel.currency must not be empty", ErrInvalidConfig)
	}
	if c.Pricing.RoundPlaces < 0 || c.Pricing.RoundPlaces > MaxRoundPlaces {
		return fmt.Errorf("%w: pricing.round_places must be between 0 and %d, got %d",
			ErrInvalidConfig, MaxRoundPlaces, c.Pricing.RoundPlaces)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level must be one of debug, info, warn, error, got %q",
			ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// ConfigTemplate returns the commented default configuration file.
func ConfigTemplate() string {
	return configTemplateContent
}
