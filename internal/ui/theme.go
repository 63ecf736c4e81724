// Package ui provides the terminal front ends for a beach-day run: a plain
// line prompter that behaves like a classic stdin script, and an interactive
// prompter built on huh forms. Both implement trip.Prompter.
package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/beachday/beachday/internal/trip"
)

// Palette colors (dark background variants).
const (
	ColorPrimary = "#F59E0B" // sand
	ColorAccent  = "#0EA5E9" // sea
	ColorSuccess = "#10B981"
	ColorError   = "#EF4444"
	ColorText    = "#E5E7EB"
	ColorMuted   = "#6B7280"
)

// ThemeConfig configures NewTheme.
type ThemeConfig struct {
	NoColor bool
}

// Theme holds the lipgloss styles used for messages and forms.
type Theme struct {
	NoColor bool

	Info lipgloss.Style
	Good lipgloss.Style
	Bad  lipgloss.Style
}

// NewTheme builds a Theme. With NoColor every style is a no-op so output
// stays byte-for-byte plain.
func NewTheme(cfg ThemeConfig) *Theme {
	t := &Theme{
		NoColor: cfg.NoColor,
		Info:    lipgloss.NewStyle(),
		Good:    lipgloss.NewStyle(),
		Bad:     lipgloss.NewStyle(),
	}
	if cfg.NoColor {
		return t
	}

	t.Info = t.Info.Foreground(lipgloss.AdaptiveColor{Light: "#0369A1", Dark: ColorAccent})
	t.Good = t.Good.Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}).Bold(true)
	t.Bad = t.Bad.Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError})
	return t
}

// Render returns m styled for its tone.
func (t *Theme) Render(m trip.Message) string {
	if t.NoColor {
		return m.Text
	}
	switch m.Tone {
	case trip.ToneGood:
		return t.Good.Render(m.Text)
	case trip.ToneBad:
		return t.Bad.Render(m.Text)
	default:
		return t.Info.Render(m.Text)
	}
}

// formTheme maps the palette onto a huh theme.
func (t *Theme) formTheme() *huh.Theme {
	if t.NoColor {
		return huh.ThemeBase()
	}

	ft := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#B45309", Dark: ColorPrimary}
	accent := lipgloss.AdaptiveColor{Light: "#0369A1", Dark: ColorAccent}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}

	ft.Focused.Title = ft.Focused.Title.Foreground(primary).Bold(true)
	ft.Focused.Description = ft.Focused.Description.Foreground(muted)
	ft.Focused.ErrorIndicator = ft.Focused.ErrorIndicator.Foreground(red)
	ft.Focused.ErrorMessage = ft.Focused.ErrorMessage.Foreground(red)
	ft.Focused.TextInput.Cursor = ft.Focused.TextInput.Cursor.Foreground(primary)
	ft.Focused.TextInput.Placeholder = ft.Focused.TextInput.Placeholder.Foreground(muted)
	ft.Focused.TextInput.Prompt = ft.Focused.TextInput.Prompt.Foreground(accent)
	ft.Focused.TextInput.Text = ft.Focused.TextInput.Text.Foreground(text)
	ft.Focused.FocusedButton = ft.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	ft.Focused.BlurredButton = ft.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	ft.Blurred = ft.Focused
	ft.Blurred.Base = ft.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return ft
}
