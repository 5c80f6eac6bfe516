package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.URL != "http://localhost:3001" {
		t.Fatalf("unexpected default url: %q", cfg.Backend.URL)
	}
	if cfg.Backend.TimeoutSeconds != 15 {
		t.Fatalf("unexpected default timeout: %d", cfg.Backend.TimeoutSeconds)
	}
	if cfg.Session.Path == "" {
		t.Fatal("session path must get a default")
	}
}

func TestYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "backend:\n  url: https://api.example.com\n  timeout_seconds: 30\nsession:\n  path: /tmp/sl-session.yaml\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.URL != "https://api.example.com" {
		t.Fatalf("unexpected url: %q", cfg.Backend.URL)
	}
	if cfg.Backend.TimeoutSeconds != 30 {
		t.Fatalf("unexpected timeout: %d", cfg.Backend.TimeoutSeconds)
	}
	if cfg.Session.Path != "/tmp/sl-session.yaml" {
		t.Fatalf("unexpected session path: %q", cfg.Session.Path)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("backend:\n  url: https://file.example.com\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("BACKEND_URL", "https://env.example.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.URL != "https://env.example.com" {
		t.Fatalf("env must win over file, got %q", cfg.Backend.URL)
	}
}

func TestMissingFileIsFine(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Fatalf("missing config file must not fail: %v", err)
	}
}
