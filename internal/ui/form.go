package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/beachday/beachday/internal/trip"
)

// FormPrompter asks each question as its own huh form. Yes/no questions are
// confirm toggles; numeric questions validate inline so a malformed number
// cannot be submitted.
type FormPrompter struct {
	in    io.Reader
	out   io.Writer
	theme *Theme
}

// NewFormPrompter creates a FormPrompter that runs its forms on in and out.
func NewFormPrompter(in io.Reader, out io.Writer, theme *Theme) *FormPrompter {
	if theme == nil {
		theme = NewTheme(ThemeConfig{})
	}
	return &FormPrompter{in: in, out: out, theme: theme}
}

// Ask runs a single-field form for q and returns the answer as text.
// Confirm answers come back as "y" or "n".
func (p *FormPrompter) Ask(ctx context.Context, q trip.Question) (string, error) {
	qf := newQuestionField(q)
	if err := p.run(ctx, qf.field); err != nil {
		return "", err
	}
	return qf.answer(), nil
}

// questionField is the huh field for one question together with the value
// it writes to. Exactly one of yes and text is set.
type questionField struct {
	field    huh.Field
	yes      *bool
	text     *string
	validate func(string) error
}

// newQuestionField builds a confirm for yes/no questions and an input for
// everything else. Numeric inputs carry the question's validator.
func newQuestionField(q trip.Question) questionField {
	title := strings.TrimSpace(q.Prompt)

	if q.Kind == trip.KindYesNo {
		yes := new(bool)
		field := huh.NewConfirm().
			Title(strings.TrimSpace(strings.TrimSuffix(title, "(y/n):"))).
			Affirmative("Yes").
			Negative("No").
			Value(yes)
		return questionField{field: field, yes: yes}
	}

	text := new(string)
	input := huh.NewInput().
		Title(title).
		Value(text)
	validate := trip.Validator(q)
	if validate != nil {
		input = input.Validate(validate)
	}
	return questionField{field: input, text: text, validate: validate}
}

// answer returns the submitted value in the form Run expects.
func (f questionField) answer() string {
	if f.yes != nil {
		if *f.yes {
			return "y"
		}
		return "n"
	}
	return *f.text
}

// Say prints the styled message on its own line.
func (p *FormPrompter) Say(m trip.Message) error {
	_, err := fmt.Fprintln(p.out, p.theme.Render(m))
	return err
}

// run executes a form holding one field.
func (p *FormPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme.formTheme()).
		WithShowHelp(false).
		WithProgramOptions(tea.WithInput(p.in), tea.WithOutput(p.out))

	return formError(form.RunWithContext(ctx))
}

// formError maps a form result onto the package errors. A user abort is
// ErrCancelled; anything else is wrapped.
func formError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return fmt.Errorf("prompt: %w", err)
}
