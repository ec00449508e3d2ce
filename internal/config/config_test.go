package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Assets.Dir != "assets" {
		t.Errorf("expected assets dir 'assets', got %s", cfg.Assets.Dir)
	}
	if cfg.Assets.Registry != "blocks.json" {
		t.Errorf("expected registry 'blocks.json', got %s", cfg.Assets.Registry)
	}
	if cfg.Atlas.Index != "atlas_index.json" {
		t.Errorf("expected atlas index 'atlas_index.json', got %s", cfg.Atlas.Index)
	}
	if cfg.Output.Path != "" {
		t.Errorf("expected export disabled by default, got %s", cfg.Output.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bakemodels.yaml")

	yamlContent := `
assets:
  dir: /data/resourcepack
  registry: /data/blocks.json

atlas:
  index: /data/atlas.json

output:
  path: cooked.bin

logging:
  level: debug
  log_file: bake.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Assets.Dir != "/data/resourcepack" {
		t.Errorf("assets dir = %s", cfg.Assets.Dir)
	}
	if cfg.Assets.Registry != "/data/blocks.json" {
		t.Errorf("registry = %s", cfg.Assets.Registry)
	}
	if cfg.Atlas.Index != "/data/atlas.json" {
		t.Errorf("atlas index = %s", cfg.Atlas.Index)
	}
	if cfg.Output.Path != "cooked.bin" {
		t.Errorf("output path = %s", cfg.Output.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "bake.log" {
		t.Errorf("log file = %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile_PartialOverridesKeepDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bakemodels.yaml")

	yamlContent := `
logging:
  level: warn
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("log level = %s", cfg.Logging.Level)
	}
	if cfg.Assets.Dir != "assets" {
		t.Errorf("assets dir should keep its default, got %s", cfg.Assets.Dir)
	}
}

func TestLoadFromFile_Malformed(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad.yaml")

	if err := os.WriteFile(configPath, []byte(":\n  - ["), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
