package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Session SessionConfig `yaml:"session"`
}

type BackendConfig struct {
	// Base URL of the marketplace REST backend.
	URL            string `yaml:"url" env:"BACKEND_URL"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"BACKEND_TIMEOUT_SECONDS"`
}

type SessionConfig struct {
	// Where the token/user session file lives. Defaults to the user
	// config dir.
	Path string `yaml:"path" env:"SESSION_PATH"`
}

// Load reads the YAML config file (optional) and applies environment
// overrides on top.
func Load(path string) (Config, error) {
	cfg := Config{
		Backend: BackendConfig{
			URL:            "http://localhost:3001",
			TimeoutSeconds: 15,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("unmarshal config file: %w", err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Session.Path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve config dir: %w", err)
		}
		cfg.Session.Path = filepath.Join(dir, "stagelink", "session.yaml")
	}
	return cfg, nil
}
