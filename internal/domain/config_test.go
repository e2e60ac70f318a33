package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Hotel.Name != DefaultHotelName {
		t.Errorf("Hotel.Name = %q, want %q", cfg.Hotel.Name, DefaultHotelName)
	}
	if cfg.Hotel.Currency != DefaultCurrency {
		t.Errorf("Hotel.Currency = %q, want %q", cfg.Hotel.Currency, DefaultCurrency)
	}
	if cfg.Pricing.RoundPlaces != DefaultRoundPlaces {
		t.Errorf("Pricing.RoundPlaces = %d, want %d", cfg.Pricing.RoundPlaces, DefaultRoundPlaces)
	}
	if !cfg.Display.Color {
		t.Error("Display.Color should default to true")
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Log.Dir != "" {
		t.Errorf("Log.Dir = %q, want empty", cfg.Log.Dir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "zero places", mutate: func(c *Config) { c.Pricing.RoundPlaces = 0 }},
		{name: "max places", mutate: func(c *Config) { c.Pricing.RoundPlaces = MaxRoundPlaces }},
		{name: "negative places", mutate: func(c *Config) { c.Pricing.RoundPlaces = -1 }, wantErr: true},
		{name: "too many places", mutate: func(c *Config) { c.Pricing.RoundPlaces = MaxRoundPlaces + 1 }, wantErr: true},
		{name: "debug level", mutate: func(c *Config) { c.Log.Level = "debug" }},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "verbose" }, wantErr: true},
		{name: "empty level", mutate: func(c *Config) { c.Log.Level = "" }, wantErr: true},
		{name: "custom hotel", mutate: func(c *Config) { c.Hotel.Name = "Lahore Hotel"; c.Hotel.Currency = "PKR" }},
		{name: "empty hotel name", mutate: func(c *Config) { c.Hotel.Name = "" }, wantErr: true},
		{name: "blank hotel name", mutate: func(c *Config) { c.Hotel.Name = "   " }, wantErr: true},
		{name: "empty currency", mutate: func(c *Config) { c.Hotel.Currency = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestConfigTemplate(t *testing.T) {
	tmpl := ConfigTemplate()
	for _, section := range []string{"[hotel]", "[pricing]", "[display]", "[log]"} {
		if !strings.Contains(tmpl, section) {
			t.Errorf("template missing %s", section)
		}
	}
}
