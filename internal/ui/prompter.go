package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/beachday/beachday/internal/trip"
)

// Mode selects the prompt front end.
type Mode string

const (
	// ModeAuto uses forms when stdin is a terminal and plain lines otherwise.
	ModeAuto Mode = "auto"
	// ModeInteractive always uses forms.
	ModeInteractive Mode = "interactive"
	// ModePlain always uses line prompts.
	ModePlain Mode = "plain"
)

// Modes lists the valid modes.
func Modes() []Mode {
	return []Mode{ModeAuto, ModeInteractive, ModePlain}
}

// ParseMode converts a mode name, case-insensitively. Empty means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeInteractive, ModePlain:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// NewPrompter picks the front end for mode. In ModeAuto the headless manager
// decides. theme only styles forms; line prompts are always plain.
func NewPrompter(mode Mode, in io.Reader, out io.Writer, theme *Theme, hm *HeadlessManager) trip.Prompter {
	switch mode {
	case ModeInteractive:
		return NewFormPrompter(in, out, theme)
	case ModePlain:
		return NewLinePrompter(in, out)
	default:
		if hm == nil {
			hm = NewHeadlessManager(in)
		}
		if hm.IsHeadless() {
			return NewLinePrompter(in, out)
		}
		return NewFormPrompter(in, out, theme)
	}
}
