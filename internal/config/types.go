package config

// Config is the root configuration aggregate.
type Config struct {
	UI       UIConfig       `yaml:"ui"`
	Log      LogConfig      `yaml:"log"`
	Currency CurrencyConfig `yaml:"currency"`
}

// UIConfig controls how questions are asked and messages are shown.
type UIConfig struct {
	// Mode selection: "auto", "interactive", "plain"
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level selection: "debug", "info", "warn", "error"
	Level string `yaml:"level"`
	// Format selection: "text", "json"
	Format string `yaml:"format"`
}

// CurrencyConfig controls how money amounts are printed.
type CurrencyConfig struct {
	Symbol string `yaml:"symbol"`
}

// fileWrapper is the on-disk shape of config.yaml.
type fileWrapper struct {
	UI       *UIConfig       `yaml:"ui,omitempty"`
	Log      *LogConfig      `yaml:"log,omitempty"`
	Currency *CurrencyConfig `yaml:"currency,omitempty"`
}
