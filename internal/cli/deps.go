// Package cli provides the Cobra command tree and dependency wiring for the
// beachday CLI. This file defines the Dependencies struct that every
// command reads its configuration and logger from.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/beachday/beachday/internal/config"
)

// Dependencies holds the services shared by CLI commands.
type Dependencies struct {
	Config *config.ConfigManager
	Logger *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates the default dependencies. The logger discards
// everything until prepare has read the configuration.
func InitDependencies() {
	deps = &Dependencies{
		Config: config.NewConfigManager(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// prepare loads configuration and builds the logger before any command runs.
func prepare(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		InitDependencies()
	}

	cfg, err := deps.Config.Load(getStringFlag(cmd, "config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logCfg := cfg.Log
	if lvl := getStringFlag(cmd, "log-level"); lvl != "" {
		logCfg.Level = strings.ToLower(lvl)
	}
	logger, err := newLogger(cmd.ErrOrStderr(), logCfg)
	if err != nil {
		return err
	}
	deps.Logger = logger

	logger.Debug("configuration loaded",
		"path", deps.Config.Path(),
		"ui_mode", cfg.UI.Mode,
		"log_level", logCfg.Level,
	)
	return nil
}

// newLogger builds a slog.Logger writing to w in the configured format.
func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", lc.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// isTerminal reports whether w is a terminal. Writers that are not files,
// such as buffers in tests, are not.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorEnabled reports whether styled output may be written to w.
func colorEnabled(cmd *cobra.Command, w io.Writer) bool {
	if getBoolFlag(cmd, "no-color") || !isTerminal(w) {
		return false
	}
	if deps != nil {
		if cfg := deps.Config.Get(); cfg != nil && cfg.UI.NoColor {
			return false
		}
	}
	return true
}
