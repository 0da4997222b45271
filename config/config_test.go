package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.AppName != AppName {
		t.Fatalf("Default().AppName = %q, want %q", cfg.AppName, AppName)
	}
	if cfg.Version == "" {
		t.Fatal("Default().Version is empty")
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("Default().LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.NoColor {
		t.Fatal("Default().NoColor = true, want false")
	}
}

func TestPathRespectsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, AppName, "config.yaml")
	if got := Path(); got != want {
		t.Fatalf("Path() = %q, want %q", got, want)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, AppName), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	content := "log-level: debug\nno-color: true\n"
	if err := os.WriteFile(Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if !cfg.NoColor {
		t.Fatal("NoColor = false, want true")
	}
	// Identity fields stay build-time fixed.
	if cfg.AppName != AppName || cfg.Version != Default().Version {
		t.Fatalf("identity fields changed: %+v", cfg)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, AppName), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(Path(), []byte("log-level: [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded on malformed yaml")
	}
}
