package ui

import (
	"io"

	"github.com/mattn/go-isatty"
)

// fdReader is satisfied by *os.File.
type fdReader interface {
	Fd() uintptr
}

// HeadlessManager decides whether prompts can use interactive forms or must
// fall back to plain line input.
type HeadlessManager struct {
	forced *bool
	input  io.Reader
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of in. Readers without a file descriptor, such as a
// strings.Reader in tests or a pipe wrapper, are always headless.
func NewHeadlessManager(in io.Reader) *HeadlessManager {
	return &HeadlessManager{input: in}
}

// IsHeadless returns true when prompts should be plain lines.
// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	f, ok := h.input.(fdReader)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
