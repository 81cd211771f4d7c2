// Package config provides configuration loading for the agenda services.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rajindersingh041/agenda-congresso/internal/categorizer"
)

// Config is the complete service configuration. Database credentials stay
// in environment variables (see internal/database); everything else lives
// here, loadable from YAML with env overrides on top.
type Config struct {
	API         APIConfig         `yaml:"api"`
	ETL         ETLConfig         `yaml:"etl"`
	Categorizer CategorizerConfig `yaml:"categorizer"`
	Camara      ChamberAPIConfig  `yaml:"camara"`
	Senado      ChamberAPIConfig  `yaml:"senado"`
}

// APIConfig configures the REST API service.
type APIConfig struct {
	// Port the HTTP server listens on.
	Port int `yaml:"port"`
	// MaxEventsPerPage caps the limit query parameter.
	MaxEventsPerPage int `yaml:"max_events_per_page"`
}

// ETLConfig configures the extraction/categorization loop.
type ETLConfig struct {
	// UpdateInterval between full ETL cycles.
	UpdateInterval time.Duration `yaml:"update_interval"`
	// StatusInterval between status-refresh passes over stored events.
	StatusInterval time.Duration `yaml:"status_interval"`
	// LookaheadDays is how far into the calendar each extraction reaches.
	LookaheadDays int `yaml:"lookahead_days"`
}

// CategorizerConfig configures the categorization engine.
type CategorizerConfig struct {
	// Threshold is the minimum relevance score for a direct assignment.
	Threshold float64 `yaml:"threshold"`
	// RulesPath optionally points at a YAML file overriding the built-in
	// synonym and fallback tables.
	RulesPath string `yaml:"rules_path"`
}

// ChamberAPIConfig configures one chamber's open-data client.
type ChamberAPIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Port:             5000,
			MaxEventsPerPage: 100,
		},
		ETL: ETLConfig{
			UpdateInterval: time.Hour,
			StatusInterval: 30 * time.Minute,
			LookaheadDays:  7,
		},
		Categorizer: CategorizerConfig{
			Threshold: categorizer.DefaultThreshold,
			RulesPath: "",
		},
		Camara: ChamberAPIConfig{
			BaseURL:   "https://dadosabertos.camara.leg.br/api/v2",
			Timeout:   30 * time.Second,
			UserAgent: "ETL-Agenda-Congresso/1.0",
		},
		Senado: ChamberAPIConfig{
			BaseURL:   "https://www12.senado.leg.br/dados-abertos",
			Timeout:   30 * time.Second,
			UserAgent: "ETL-Agenda-Congresso/1.0",
		},
	}
}

// Load reads configuration: defaults, then the YAML file at path (skipped
// when path is empty), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("API_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.API.Port = port
		}
	}
	if v := os.Getenv("ETL_UPDATE_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.ETL.UpdateInterval = d
		}
	}
	if v := os.Getenv("ETL_STATUS_UPDATE_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.ETL.StatusInterval = d
		}
	}
	if v := os.Getenv("CATEGORIZACAO_SCORE_MINIMO"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Categorizer.Threshold = f
		}
	}
	if v := os.Getenv("CATEGORIZACAO_RULES_PATH"); v != "" {
		c.Categorizer.RulesPath = v
	}
	if v := os.Getenv("CAMARA_BASE_URL"); v != "" {
		c.Camara.BaseURL = v
	}
	if v := os.Getenv("SENADO_BASE_URL"); v != "" {
		c.Senado.BaseURL = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.API.Port < 1 || c.API.Port > 65535 {
		return fmt.Errorf("api.port out of range: %d", c.API.Port)
	}
	if c.API.MaxEventsPerPage < 1 {
		return fmt.Errorf("api.max_events_per_page must be positive")
	}
	if c.ETL.UpdateInterval < time.Minute {
		return fmt.Errorf("etl.update_interval must be at least 1m")
	}
	if c.ETL.StatusInterval < time.Minute {
		return fmt.Errorf("etl.status_interval must be at least 1m")
	}
	if c.ETL.LookaheadDays < 1 {
		return fmt.Errorf("etl.lookahead_days must be positive")
	}
	if c.Categorizer.Threshold < 0 || c.Categorizer.Threshold > 1 {
		return fmt.Errorf("categorizer.threshold must be within [0, 1]: %g", c.Categorizer.Threshold)
	}
	if c.Camara.BaseURL == "" || c.Senado.BaseURL == "" {
		return fmt.Errorf("chamber base URLs are required")
	}
	return nil
}
