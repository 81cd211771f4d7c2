package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.API.Port)
	}
	if cfg.ETL.UpdateInterval != time.Hour {
		t.Errorf("expected default update interval 1h, got %s", cfg.ETL.UpdateInterval)
	}
	if cfg.Categorizer.Threshold != 0.1 {
		t.Errorf("expected default threshold 0.1, got %g", cfg.Categorizer.Threshold)
	}
	if cfg.Camara.BaseURL == "" || cfg.Senado.BaseURL == "" {
		t.Error("expected chamber base URLs by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "port too low",
			modify:  func(c *Config) { c.API.Port = 0 },
			wantErr: true,
		},
		{
			name:    "update interval too short",
			modify:  func(c *Config) { c.ETL.UpdateInterval = 30 * time.Second },
			wantErr: true,
		},
		{
			name:    "threshold above one",
			modify:  func(c *Config) { c.Categorizer.Threshold = 1.1 },
			wantErr: true,
		},
		{
			name:    "threshold negative",
			modify:  func(c *Config) { c.Categorizer.Threshold = -0.1 },
			wantErr: true,
		},
		{
			name:    "missing camara base url",
			modify:  func(c *Config) { c.Camara.BaseURL = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `api:
  port: 8085
categorizer:
  threshold: 0.3
etl:
  update_interval: 2h
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.Port != 8085 {
		t.Errorf("expected port 8085, got %d", cfg.API.Port)
	}
	if cfg.Categorizer.Threshold != 0.3 {
		t.Errorf("expected threshold 0.3, got %g", cfg.Categorizer.Threshold)
	}
	if cfg.ETL.UpdateInterval != 2*time.Hour {
		t.Errorf("expected update interval 2h, got %s", cfg.ETL.UpdateInterval)
	}
	// Untouched values keep defaults.
	if cfg.ETL.StatusInterval != 30*time.Minute {
		t.Errorf("expected status interval 30m, got %s", cfg.ETL.StatusInterval)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9000")
	t.Setenv("CATEGORIZACAO_SCORE_MINIMO", "0.25")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.Port != 9000 {
		t.Errorf("expected port 9000 from env, got %d", cfg.API.Port)
	}
	if cfg.Categorizer.Threshold != 0.25 {
		t.Errorf("expected threshold 0.25 from env, got %g", cfg.Categorizer.Threshold)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
