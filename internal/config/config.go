// Package config loads the livetv-sync configuration from an optional YAML
// file and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when CONFIG_FILE is not set.
const DefaultConfigFile = "livetv-sync.yaml"

// Config holds the complete application configuration
type Config struct {
	// Playlist file settings
	Playlist struct {
		Path            string `yaml:"path" validate:"required"`
		EPGURL          string `yaml:"epg_url" validate:"required,url"`
		ResetCategories bool   `yaml:"reset_categories"`
	} `yaml:"playlist"`

	// Channel directory settings
	Directory struct {
		BaseURL        string `yaml:"base_url" validate:"required,url"`
		Path           string `yaml:"path" validate:"required,startswith=/"`
		AnchorSelector string `yaml:"anchor_selector" validate:"required"`
		LoadAttempts   uint   `yaml:"load_attempts" validate:"min=1,max=10"`
	} `yaml:"directory"`

	// Browser automation settings
	Browser struct {
		Name              string        `yaml:"name" validate:"oneof=firefox chromium webkit"`
		Headless          bool          `yaml:"headless"`
		Install           bool          `yaml:"install"`
		NavigationTimeout time.Duration `yaml:"navigation_timeout" validate:"gt=0"`
		ClickTimeout      time.Duration `yaml:"click_timeout" validate:"gt=0"`
		SettleDelay       time.Duration `yaml:"settle_delay" validate:"gte=0"`
	} `yaml:"browser"`

	// Category overrides
	Categories struct {
		File string `yaml:"file"`
	} `yaml:"categories"`

	// Logging settings
	Log struct {
		Level      string `yaml:"level" validate:"oneof=debug info warn error"`
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
		MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
		MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"log"`

	// Metrics settings
	Metrics struct {
		Textfile string `yaml:"textfile"`
	} `yaml:"metrics"`
}

// DirectoryURL returns the absolute URL of the channel directory page.
func (c *Config) DirectoryURL() string {
	return strings.TrimRight(c.Directory.BaseURL, "/") + c.Directory.Path
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s failed %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value()))
		} else {
			messages = append(messages, fmt.Sprintf("%s failed %s (got %v)", field, fe.Tag(), fe.Value()))
		}
	}

	return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(messages, "\n  - "))
}

// Default returns a Config with sensible default values
func Default() *Config {
	cfg := &Config{}

	// Playlist defaults
	cfg.Playlist.Path = "livetv.m3u8"
	cfg.Playlist.EPGURL = "https://tvpass.org/epg.xml"
	cfg.Playlist.ResetCategories = true

	// Directory defaults
	cfg.Directory.BaseURL = "https://thetvapp.to"
	cfg.Directory.Path = "/tv"
	cfg.Directory.AnchorSelector = "ol.list-group a"
	cfg.Directory.LoadAttempts = 1

	// Browser defaults
	cfg.Browser.Name = "firefox"
	cfg.Browser.Headless = true
	cfg.Browser.NavigationTimeout = 30 * time.Second
	cfg.Browser.ClickTimeout = 5 * time.Second
	cfg.Browser.SettleDelay = 4 * time.Second

	// Log defaults
	cfg.Log.Level = "info"
	cfg.Log.MaxSizeMB = 10
	cfg.Log.MaxBackups = 3
	cfg.Log.MaxAgeDays = 28

	return cfg
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Load loads configuration from a file (if present) and applies environment variable overrides
func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = DefaultConfigFile
	}

	var cfg *Config

	if _, err := os.Stat(configPath); err == nil {
		cfg, err = LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg = Default()
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration
func applyEnvOverrides(cfg *Config) error {
	// Playlist settings
	if val := os.Getenv("PLAYLIST_PATH"); val != "" {
		cfg.Playlist.Path = val
	}
	if val := os.Getenv("EPG_URL"); val != "" {
		cfg.Playlist.EPGURL = val
	}
	if val := os.Getenv("RESET_CATEGORIES"); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid RESET_CATEGORIES: %w", err)
		}
		cfg.Playlist.ResetCategories = b
	}

	// Directory settings
	if val := os.Getenv("BASE_URL"); val != "" {
		cfg.Directory.BaseURL = val
	}
	if val := os.Getenv("DIRECTORY_PATH"); val != "" {
		cfg.Directory.Path = val
	}
	if val := os.Getenv("DIRECTORY_LOAD_ATTEMPTS"); val != "" {
		n, err := strconv.ParseUint(val, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid DIRECTORY_LOAD_ATTEMPTS: %w", err)
		}
		cfg.Directory.LoadAttempts = uint(n)
	}

	// Browser settings
	if val := os.Getenv("BROWSER"); val != "" {
		cfg.Browser.Name = strings.ToLower(val)
	}
	if val := os.Getenv("HEADLESS"); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid HEADLESS: %w", err)
		}
		cfg.Browser.Headless = b
	}
	if val := os.Getenv("CLICK_TIMEOUT"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid CLICK_TIMEOUT format (expected duration like '5s'): %w", err)
		}
		cfg.Browser.ClickTimeout = d
	}
	if val := os.Getenv("SETTLE_DELAY"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid SETTLE_DELAY format (expected duration like '4s'): %w", err)
		}
		cfg.Browser.SettleDelay = d
	}

	// Categories
	if val := os.Getenv("CATEGORIES_FILE"); val != "" {
		cfg.Categories.File = val
	}

	// Logging
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.Log.Level = strings.ToLower(val)
	}
	if val := os.Getenv("LOG_FILE"); val != "" {
		cfg.Log.File = val
	}

	// Metrics
	if val := os.Getenv("METRICS_TEXTFILE"); val != "" {
		cfg.Metrics.Textfile = val
	}

	return nil
}
