package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if !cfg.Enabled {
		t.Errorf("Plugin should be enabled by default")
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Default log level mismatch: got %s, want info", cfg.LogLevel)
	}

	if cfg.WorkspaceRoot != "" {
		t.Errorf("Default workspace root mismatch: got %s, want empty", cfg.WorkspaceRoot)
	}

	if len(cfg.Filetypes) != 0 {
		t.Errorf("Default filetype rules mismatch: got %v, want empty", cfg.Filetypes)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	configContent := `
enabled: true
log_level: debug
workspace_root: /proj
filetypes:
  markdown: false
  "*": true
`
	if _, err := tmpfile.Write([]byte(configContent)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Log level mismatch: got %s, want debug", cfg.LogLevel)
	}

	if cfg.WorkspaceRoot != "/proj" {
		t.Errorf("Workspace root mismatch: got %s, want /proj", cfg.WorkspaceRoot)
	}

	if enabled, ok := cfg.Filetypes["markdown"]; !ok || enabled {
		t.Errorf("Filetype rule mismatch: got %v (present=%v), want false", enabled, ok)
	}

	if enabled, ok := cfg.Filetypes["*"]; !ok || !enabled {
		t.Errorf("Wildcard rule mismatch: got %v (present=%v), want true", enabled, ok)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Errorf("Expected error for missing config file")
	}
}
