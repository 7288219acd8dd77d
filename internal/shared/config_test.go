package shared

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./predica.db" {
			t.Errorf("expected database path ./predica.db, got %s", config.Database.Path)
		}

		if config.API.BaseURL != "http://127.0.0.1:8080" {
			t.Errorf("expected API base URL http://127.0.0.1:8080, got %s", config.API.BaseURL)
		}

		if config.API.TimeoutSeconds != 15 {
			t.Errorf("expected API timeout 15s, got %d", config.API.TimeoutSeconds)
		}

		if config.Log.Level != "info" {
			t.Errorf("expected log level info, got %s", config.Log.Level)
		}
	})

	t.Run("APIConfig timeout", func(t *testing.T) {
		if got := (APIConfig{TimeoutSeconds: 30}).Timeout(); got != 30*time.Second {
			t.Errorf("expected 30s, got %v", got)
		}
		if got := (APIConfig{}).Timeout(); got != 15*time.Second {
			t.Errorf("expected 15s fallback for zero value, got %v", got)
		}
		if got := (APIConfig{TimeoutSeconds: -1}).Timeout(); got != 15*time.Second {
			t.Errorf("expected 15s fallback for negative value, got %v", got)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[api]
base_url = "https://api.example.church"
timeout_seconds = 5

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[log]
level = "debug"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.API.BaseURL != "https://api.example.church" {
			t.Errorf("expected custom base URL, got %s", config.API.BaseURL)
		}

		if config.API.Timeout() != 5*time.Second {
			t.Errorf("expected 5s timeout, got %v", config.API.Timeout())
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
