// Package config loads the optional vitalog config file. Flags always win
// over the file; the file wins over built-in defaults. Environment variables
// prefixed VITALOG_ override file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "VITALOG_"

type Config struct {
	// Storage is the store file path; extension selects the backend
	// (.json for the JSON document store, anything else for SQLite).
	Storage string `koanf:"storage"`
	// Language is the default display language (en, de, es, fr).
	Language string `koanf:"language"`
	// Debug enables debug-level logging.
	Debug bool `koanf:"debug"`
	// BackupKeep is how many rotated backups to retain.
	BackupKeep int `koanf:"backupKeep"`
}

// DefaultPath is where the config file is looked up when none is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vitalog", "config.yaml")
}

// DefaultStoragePath is the built-in store location.
func DefaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vitalog.db"
	}
	return filepath.Join(home, ".config", "vitalog", "vitalog.db")
}

// Load reads the config file at path if it exists, then applies VITALOG_*
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Storage:    DefaultStoragePath(),
		Language:   "en",
		BackupKeep: 14,
	}

	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env config: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
