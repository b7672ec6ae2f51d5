package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Service.Port != defaultServicePort {
		t.Errorf("port = %d, want %d", cfg.Service.Port, defaultServicePort)
	}
	if cfg.Database.Driver != "sqlite3" {
		t.Errorf("driver = %s, want sqlite3", cfg.Database.Driver)
	}
	if cfg.Classification.MinConfidenceThreshold != defaultMinConfidence {
		t.Errorf("min confidence = %f", cfg.Classification.MinConfidenceThreshold)
	}
	if cfg.Service.ReadTimeout != defaultReadTimeoutSec*time.Second {
		t.Errorf("read timeout = %s", cfg.Service.ReadTimeout)
	}
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
service:
  name: lawagent-test
  port: 9999
classification:
  min_confidence_threshold: 0.35
database:
  driver: postgres
  dsn: postgres://localhost/lawagent
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Service.Name != "lawagent-test" {
		t.Errorf("name = %s", cfg.Service.Name)
	}
	if cfg.Service.Port != 9999 {
		t.Errorf("port = %d, want 9999", cfg.Service.Port)
	}
	if cfg.Classification.MinConfidenceThreshold != 0.35 {
		t.Errorf("min confidence = %f, want 0.35", cfg.Classification.MinConfidenceThreshold)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("driver = %s, want postgres", cfg.Database.Driver)
	}
	// Untouched values keep their defaults.
	if cfg.Service.BatchMaxSize != defaultBatchMaxSize {
		t.Errorf("batch max size = %d", cfg.Service.BatchMaxSize)
	}
}

func TestLoad_EnvWinsOverYAML(t *testing.T) {
	path := writeConfig(t, `
service:
  port: 9999
logging:
  level: debug
`)

	t.Setenv("LAWAGENT_PORT", "7070")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LAWAGENT_MIN_CONFIDENCE", "0.4")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Service.Port != 7070 {
		t.Errorf("port = %d, want env override 7070", cfg.Service.Port)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("level = %s, want error", cfg.Logging.Level)
	}
	if cfg.Classification.MinConfidenceThreshold != 0.4 {
		t.Errorf("min confidence = %f, want 0.4", cfg.Classification.MinConfidenceThreshold)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestGetConfigPath(t *testing.T) {
	if got := GetConfigPath("default.yml"); got != "default.yml" {
		t.Errorf("GetConfigPath = %s", got)
	}
	t.Setenv("CONFIG_PATH", "/etc/lawagent/config.yml")
	if got := GetConfigPath("default.yml"); got != "/etc/lawagent/config.yml" {
		t.Errorf("GetConfigPath = %s", got)
	}
}
