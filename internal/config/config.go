// Package config loads and watches the numfield YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"numfield/internal/commission"
	"numfield/internal/logging"
	"numfield/internal/numeric"
)

// EnvPrefix prefixes every environment override, e.g. NUMFIELD_MAX_DECIMALS.
const EnvPrefix = "NUMFIELD_"

// Config holds all numfield configuration.
type Config struct {
	// Grammar for the sale-price field
	Sanitizer SanitizerConfig `yaml:"sanitizer"`

	// Fee schedules compared by the calculator
	Commission CommissionConfig `yaml:"commission"`

	// Calculator screen
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// SanitizerConfig configures the bound numeric field.
type SanitizerConfig struct {
	AllowDecimals bool `yaml:"allow_decimals" env:"ALLOW_DECIMALS"`
	AllowNegative bool `yaml:"allow_negative" env:"ALLOW_NEGATIVE"`
	MaxDecimals   int  `yaml:"max_decimals" env:"MAX_DECIMALS"`
}

// CommissionConfig holds fee schedules as decimal strings.
type CommissionConfig struct {
	BrokerRate     string `yaml:"broker_rate" env:"BROKER_RATE"`
	BrokerMinimum  string `yaml:"broker_minimum" env:"BROKER_MINIMUM"`
	ServiceRate    string `yaml:"service_rate" env:"SERVICE_RATE"`
	ServiceMinimum string `yaml:"service_minimum" env:"SERVICE_MINIMUM"`
}

// UIConfig configures the interactive calculator.
type UIConfig struct {
	Theme string `yaml:"theme" env:"THEME"` // light, dark, auto

	// CompactWidth is the breakpoint in columns below which the layout stacks
	CompactWidth int `yaml:"compact_width" env:"COMPACT_WIDTH"`

	// ExamplePrices become quick example buttons
	ExamplePrices []string `yaml:"example_prices"`

	Confetti bool `yaml:"confetti" env:"CONFETTI"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode" env:"DEBUG"` // master toggle, false = no logging
	Level      string          `yaml:"level" env:"LOG_LEVEL"`  // debug, info, warn, error
	File       string          `yaml:"file" env:"LOG_FILE"`
	Categories map[string]bool `yaml:"categories"` // per-category toggles
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	rates := commission.DefaultRates()
	return &Config{
		Sanitizer: SanitizerConfig{
			AllowDecimals: false,
			AllowNegative: false,
			MaxDecimals:   0,
		},
		Commission: CommissionConfig{
			BrokerRate:     rates.BrokerRate.String(),
			BrokerMinimum:  rates.BrokerMinimum.String(),
			ServiceRate:    rates.ServiceRate.String(),
			ServiceMinimum: rates.ServiceMinimum.String(),
		},
		UI: UIConfig{
			Theme:         "auto",
			CompactWidth:  60,
			ExamplePrices: []string{"450,000", "750,000", "1,250,000"},
			Confetti:      true,
		},
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
			File:      filepath.Join(os.TempDir(), "numfield.log"),
		},
	}
}

// DefaultPath returns ~/.config/numfield/config.yaml, or a relative path
// when the user config dir is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".numfield", "config.yaml")
	}
	return filepath.Join(dir, "numfield", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logging.Get(logging.CategoryConfig).Debugw("config file not found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies NUMFIELD_* environment variables on top of
// whatever the file set. Unset variables leave fields untouched.
func (c *Config) applyEnvOverrides() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return nil
}

// ValidThemes lists the accepted ui.theme values.
var ValidThemes = []string{"auto", "light", "dark"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Sanitizer.MaxDecimals < 0 {
		return fmt.Errorf("sanitizer.max_decimals must not be negative, got %d", c.Sanitizer.MaxDecimals)
	}
	if _, err := c.Commission.Rates(); err != nil {
		return fmt.Errorf("commission: %w", err)
	}
	for _, p := range c.UI.ExamplePrices {
		if numeric.Filter(p, numeric.IntegerConfig()) == "" {
			return fmt.Errorf("ui.example_prices: %q has no digits", p)
		}
	}

	validTheme := false
	for _, t := range ValidThemes {
		if c.UI.Theme == t {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("invalid ui.theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}
	if c.UI.CompactWidth < 0 {
		return fmt.Errorf("ui.compact_width must not be negative, got %d", c.UI.CompactWidth)
	}
	return nil
}

// Numeric returns the grammar for the bound field.
func (s SanitizerConfig) Numeric() numeric.Config {
	return numeric.Config{
		AllowDecimals: s.AllowDecimals,
		AllowNegative: s.AllowNegative,
		MaxDecimals:   s.MaxDecimals,
	}
}

// Rates parses the fee schedules.
func (c CommissionConfig) Rates() (commission.Rates, error) {
	return commission.ParseRates(c.BrokerRate, c.BrokerMinimum, c.ServiceRate, c.ServiceMinimum)
}

// Options converts to the logging package's options.
func (l LoggingConfig) Options() logging.Options {
	return logging.Options{
		DebugMode:  l.DebugMode,
		Level:      l.Level,
		File:       l.File,
		Categories: l.Categories,
	}
}
