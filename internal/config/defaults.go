package config

import (
	"os"
	"path/filepath"
)

// Default value constants.
const (
	DefaultUIMode         = "auto"
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
	DefaultCurrencySymbol = "$"

	// DirName is the per-user configuration directory under $HOME.
	DirName = ".beachday"
	// FileName is the configuration file inside DirName.
	FileName = "config.yaml"
)

// Valid enumerations.
var (
	validUIModes    = []string{"auto", "interactive", "plain"}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		UI:       NewDefaultUIConfig(),
		Log:      NewDefaultLogConfig(),
		Currency: NewDefaultCurrencyConfig(),
	}
}

// NewDefaultUIConfig returns a UIConfig with default values.
func NewDefaultUIConfig() UIConfig {
	return UIConfig{Mode: DefaultUIMode}
}

// NewDefaultLogConfig returns a LogConfig with default values.
func NewDefaultLogConfig() LogConfig {
	return LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat}
}

// NewDefaultCurrencyConfig returns a CurrencyConfig with default values.
func NewDefaultCurrencyConfig() CurrencyConfig {
	return CurrencyConfig{Symbol: DefaultCurrencySymbol}
}

// DefaultPath returns the configuration file path. BEACHDAY_CONFIG wins
// over $HOME/.beachday/config.yaml. If the home directory cannot be
// determined the path is relative to the working directory.
func DefaultPath() string {
	if p := os.Getenv("BEACHDAY_CONFIG"); p != "" {
		return filepath.Clean(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(DirName, FileName)
	}
	return filepath.Join(home, DirName, FileName)
}

// applyDefaults fills empty fields left by a partial config file.
func applyDefaults(cfg *Config) {
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultUIMode
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Currency.Symbol == "" {
		cfg.Currency.Symbol = DefaultCurrencySymbol
	}
}
