package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Test loading with no config file (should use defaults)
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading defaults, got %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config to be non-nil")
	}

	// Check defaults
	if cfg.Server.Port != 7420 {
		t.Errorf("expected default port 7420, got %d", cfg.Server.Port)
	}

	if cfg.Server.Host != "localhost" {
		t.Errorf("expected default host 'localhost', got %s", cfg.Server.Host)
	}

	if cfg.Watch.DebounceMillis != 250 {
		t.Errorf("expected default debounce 250, got %d", cfg.Watch.DebounceMillis)
	}

	if cfg.Manifests.DisableBuiltins {
		t.Error("expected builtins enabled by default")
	}
}

func TestLoadWithConfigFile(t *testing.T) {
	// Create temporary directory with config file
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	// Write config file
	configContent := `
server:
  port: 8080
  host: 0.0.0.0
manifests:
  dirs:
    - ./manifests
  disable_builtins: true
watch:
  debounce_millis: 500
`
	os.WriteFile("stencil.yml", []byte(configContent), 0644)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected host '0.0.0.0', got %s", cfg.Server.Host)
	}

	if len(cfg.Manifests.Dirs) != 1 || cfg.Manifests.Dirs[0] != "./manifests" {
		t.Errorf("expected manifest dirs ['./manifests'], got %v", cfg.Manifests.Dirs)
	}

	if !cfg.Manifests.DisableBuiltins {
		t.Error("expected builtins disabled")
	}

	if cfg.Watch.DebounceMillis != 500 {
		t.Errorf("expected debounce 500, got %d", cfg.Watch.DebounceMillis)
	}

	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("expected addr '0.0.0.0:8080', got %s", cfg.Addr())
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	os.WriteFile("stencil.yml", []byte("server:\n  port: -1\n"), 0644)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}
