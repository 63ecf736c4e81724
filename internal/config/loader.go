package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loader reads configuration from a YAML file.
type Loader struct{}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration file at path and returns it merged over
// compiled defaults. A missing file yields the defaults and loaded=false.
func (l *Loader) Load(path string) (cfg *Config, loaded bool, err error) {
	cfg = NewDefaultConfig()

	wrapper := &fileWrapper{UI: &cfg.UI, Log: &cfg.Log, Currency: &cfg.Currency}
	loaded, err = loadYAMLFile(path, wrapper)
	if err != nil {
		return nil, false, err
	}
	if !loaded {
		slog.Debug("config file not found, using defaults", "path", path)
	}

	applyDefaults(cfg)
	return cfg, loaded, nil
}

// loadYAMLFile reads a YAML file and unmarshals it into the target struct.
// Returns (true, nil) if the file was found and parsed, (false, nil) if the
// file does not exist, or (false, error) on failure.
func loadYAMLFile(path string, target any) (bool, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}

	return true, nil
}

// Marshal renders cfg as YAML in the same shape Load accepts.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(fileWrapper{UI: &cfg.UI, Log: &cfg.Log, Currency: &cfg.Currency})
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
