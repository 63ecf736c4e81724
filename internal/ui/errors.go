package ui

import "errors"

// Sentinel errors for prompt operations.
var (
	// ErrCancelled is returned when the user aborts an interactive form.
	ErrCancelled = errors.New("ui: cancelled by user")

	// ErrUnknownMode is returned by ParseMode for unrecognised mode names.
	ErrUnknownMode = errors.New("ui: unknown prompt mode")
)
