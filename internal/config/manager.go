package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// ConfigManager provides thread-safe configuration management.
// It must be initialized via Load() before use.
type ConfigManager struct {
	mu     sync.RWMutex
	config *Config
	path   string
	loaded bool
	loader *Loader
}

// NewConfigManager creates a new ConfigManager instance in uninitialized state.
func NewConfigManager() *ConfigManager {
	return &ConfigManager{loader: NewLoader()}
}

// Load reads configuration from path (DefaultPath() when empty), applies
// environment variable overrides and validates the result.
func (m *ConfigManager) Load(path string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if path == "" {
		path = DefaultPath()
	}

	cfg, loaded, err := m.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Environment variables take priority over the file.
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	m.config = cfg
	m.path = path
	m.loaded = loaded
	return cfg, nil
}

// Get returns the current in-memory configuration.
// Returns nil if the manager has not been initialized via Load().
func (m *ConfigManager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Path returns the file Load read from, or "" before Load.
func (m *ConfigManager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// FromFile reports whether the configuration file existed.
// Returns ErrNotInitialized if Load() has not been called.
func (m *ConfigManager) FromFile() (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return false, ErrNotInitialized
	}
	return m.loaded, nil
}

// applyEnvOverrides applies BEACHDAY_* environment variables and NO_COLOR.
func applyEnvOverrides(cfg *Config) {
	if mode := os.Getenv("BEACHDAY_UI_MODE"); mode != "" {
		cfg.UI.Mode = strings.ToLower(mode)
	}
	if level := os.Getenv("BEACHDAY_LOG_LEVEL"); level != "" {
		cfg.Log.Level = strings.ToLower(level)
	}
	if format := os.Getenv("BEACHDAY_LOG_FORMAT"); format != "" {
		cfg.Log.Format = strings.ToLower(format)
	}
	if symbol := os.Getenv("BEACHDAY_CURRENCY"); symbol != "" {
		cfg.Currency.Symbol = symbol
	}
	// https://no-color.org: any non-empty value disables colour.
	if os.Getenv("NO_COLOR") != "" {
		cfg.UI.NoColor = true
	}
}
