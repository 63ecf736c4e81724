package config

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// maxCurrencySymbolLen bounds currency.symbol in runes.
const maxCurrencySymbolLen = 4

// Validate checks the configuration for correctness and returns a
// *ValidationErrors listing every problem found.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateUI(&cfg.UI)...)
	errs = append(errs, validateLog(&cfg.Log)...)
	errs = append(errs, validateCurrency(&cfg.Currency)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateUI(ui *UIConfig) []ValidationError {
	if slices.Contains(validUIModes, ui.Mode) {
		return nil
	}
	return []ValidationError{{
		Field:   "ui.mode",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(validUIModes, ", ")),
		Value:   ui.Mode,
		Wrapped: ErrInvalidUIMode,
	}}
}

func validateLog(lc *LogConfig) []ValidationError {
	var errs []ValidationError
	if !slices.Contains(validLogLevels, lc.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
			Value:   lc.Level,
			Wrapped: ErrInvalidLogLevel,
		})
	}
	if !slices.Contains(validLogFormats, lc.Format) {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogFormats, ", ")),
			Value:   lc.Format,
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

func validateCurrency(cc *CurrencyConfig) []ValidationError {
	if n := utf8.RuneCountInString(cc.Symbol); n > maxCurrencySymbolLen {
		return []ValidationError{{
			Field:   "currency.symbol",
			Message: fmt.Sprintf("must be at most %d characters", maxCurrencySymbolLen),
			Value:   cc.Symbol,
			Wrapped: ErrInvalidConfig,
		}}
	}
	return nil
}
