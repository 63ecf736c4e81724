package ui

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"Interactive", ModeInteractive, false},
		{" plain ", ModePlain, false},
		{"fancy", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q) error should wrap ErrUnknownMode, got %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestModes(t *testing.T) {
	t.Parallel()

	for _, m := range Modes() {
		if _, err := ParseMode(string(m)); err != nil {
			t.Errorf("ParseMode(%q) should accept listed mode: %v", m, err)
		}
	}
}

func TestNewPrompter(t *testing.T) {
	t.Parallel()

	theme := NewTheme(ThemeConfig{NoColor: true})
	in := strings.NewReader("")

	if _, ok := NewPrompter(ModePlain, in, io.Discard, theme, nil).(*LinePrompter); !ok {
		t.Error("ModePlain should return a *LinePrompter")
	}
	if _, ok := NewPrompter(ModeInteractive, in, io.Discard, theme, nil).(*FormPrompter); !ok {
		t.Error("ModeInteractive should return a *FormPrompter")
	}
	if _, ok := NewPrompter(ModeAuto, in, io.Discard, theme, nil).(*LinePrompter); !ok {
		t.Error("ModeAuto on a non-terminal should return a *LinePrompter")
	}

	hm := NewHeadlessManager(in)
	hm.ForceHeadless(false)
	if _, ok := NewPrompter(ModeAuto, in, io.Discard, theme, hm).(*FormPrompter); !ok {
		t.Error("ModeAuto with forced interactive should return a *FormPrompter")
	}
}
