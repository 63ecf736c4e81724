package trip

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

// scriptedPrompter answers questions from a fixed list and records what
// was asked and said.
type scriptedPrompter struct {
	answers []string
	asked   []string
	said    []string
}

func (p *scriptedPrompter) Ask(_ context.Context, q Question) (string, error) {
	p.asked = append(p.asked, q.ID)
	if len(p.answers) == 0 {
		return "", io.ErrUnexpectedEOF
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *scriptedPrompter) Say(m Message) error {
	p.said = append(p.said, m.Text)
	return nil
}

func TestRun_Branches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		answers  []string
		said     []string
		asked    []string
		decision Decision
		iceCream IceCream
	}{
		{
			name:     "declines beach",
			answers:  []string{"gabe", "n"},
			said:     []string{"Ok, enjoy your time at home."},
			asked:    []string{QuestionFirstName, QuestionBeach},
			decision: DecisionStayHome,
		},
		{
			name:     "any non-y answer stays home",
			answers:  []string{"gabe", "yes"},
			said:     []string{"Ok, enjoy your time at home."},
			asked:    []string{QuestionFirstName, QuestionBeach},
			decision: DecisionStayHome,
		},
		{
			name:     "too cold",
			answers:  []string{"gabe", "y", "60", "70"},
			said:     []string{"It's not warm enough, stay at home."},
			asked:    []string{QuestionFirstName, QuestionBeach, QuestionCurrentTemp, QuestionMinTemp},
			decision: DecisionTooCold,
		},
		{
			name:    "warm enough, no ice cream",
			answers: []string{"gabe", "Y", "80", "70", "n"},
			said: []string{
				"You can go to the beach because it is 80 degrees.",
				"Enjoy your time at the beach.",
			},
			asked:    []string{QuestionFirstName, QuestionBeach, QuestionCurrentTemp, QuestionMinTemp, QuestionIceCream},
			decision: DecisionBeach,
			iceCream: IceCreamDeclined,
		},
		{
			name:    "equal temperatures are warm enough",
			answers: []string{"gabe", "y", "70", "70", "n"},
			said: []string{
				"You can go to the beach because it is 70 degrees.",
				"Enjoy your time at the beach.",
			},
			asked:    []string{QuestionFirstName, QuestionBeach, QuestionCurrentTemp, QuestionMinTemp, QuestionIceCream},
			decision: DecisionBeach,
			iceCream: IceCreamDeclined,
		},
		{
			name:    "buys ice cream",
			answers: []string{"gabe", "y", "80", "70", "y", "5.00", "3.00"},
			said: []string{
				"You can go to the beach because it is 80 degrees.",
				"You can buy an ice cream and you will have $2.00 left.",
				"Enjoy your time at the beach.",
			},
			asked: []string{
				QuestionFirstName, QuestionBeach, QuestionCurrentTemp, QuestionMinTemp,
				QuestionIceCream, QuestionCash, QuestionIceCreamCost,
			},
			decision: DecisionBeach,
			iceCream: IceCreamBought,
		},
		{
			name:    "exact cash buys ice cream",
			answers: []string{"gabe", "y", "80", "70", "y", "3", "3"},
			said: []string{
				"You can go to the beach because it is 80 degrees.",
				"You can buy an ice cream and you will have $0.00 left.",
				"Enjoy your time at the beach.",
			},
			asked: []string{
				QuestionFirstName, QuestionBeach, QuestionCurrentTemp, QuestionMinTemp,
				QuestionIceCream, QuestionCash, QuestionIceCreamCost,
			},
			decision: DecisionBeach,
			iceCream: IceCreamBought,
		},
		{
			name:    "too expensive",
			answers: []string{"gabe", "y", "80", "70", "y", "5.00", "10.00"},
			said: []string{
				"You can go to the beach because it is 80 degrees.",
				"Sorry, no ice cream today.",
				"Enjoy your time at the beach.",
			},
			asked: []string{
				QuestionFirstName, QuestionBeach, QuestionCurrentTemp, QuestionMinTemp,
				QuestionIceCream, QuestionCash, QuestionIceCreamCost,
			},
			decision: DecisionBeach,
			iceCream: IceCreamTooExpensive,
		},
		{
			name:    "no cash",
			answers: []string{"gabe", "y", "80", "70", "y", "0"},
			said: []string{
				"You can go to the beach because it is 80 degrees.",
				"Please remember to bring cash next time.",
				"Enjoy your time at the beach.",
			},
			asked: []string{
				QuestionFirstName, QuestionBeach, QuestionCurrentTemp, QuestionMinTemp,
				QuestionIceCream, QuestionCash,
			},
			decision: DecisionBeach,
			iceCream: IceCreamNoCash,
		},
		{
			name:    "negative cash counts as none",
			answers: []string{"gabe", "y", "80", "70", "y", "-2.5"},
			said: []string{
				"You can go to the beach because it is 80 degrees.",
				"Please remember to bring cash next time.",
				"Enjoy your time at the beach.",
			},
			asked: []string{
				QuestionFirstName, QuestionBeach, QuestionCurrentTemp, QuestionMinTemp,
				QuestionIceCream, QuestionCash,
			},
			decision: DecisionBeach,
			iceCream: IceCreamNoCash,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &scriptedPrompter{answers: slices.Clone(tt.answers)}
			out, err := Run(context.Background(), p, Options{})
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if !slices.Equal(p.said, tt.said) {
				t.Errorf("said:\n got %q\nwant %q", p.said, tt.said)
			}
			if !slices.Equal(p.asked, tt.asked) {
				t.Errorf("asked:\n got %q\nwant %q", p.asked, tt.asked)
			}
			if out.Decision != tt.decision {
				t.Errorf("Decision: got %q, want %q", out.Decision, tt.decision)
			}
			if out.IceCream != tt.iceCream {
				t.Errorf("IceCream: got %q, want %q", out.IceCream, tt.iceCream)
			}
			if len(out.Messages) != len(tt.said) {
				t.Errorf("Messages: got %d, want %d", len(out.Messages), len(tt.said))
			}
			if len(p.answers) != 0 {
				t.Errorf("unused answers: %q", p.answers)
			}
		})
	}
}

func TestRun_CapitalizesName(t *testing.T) {
	t.Parallel()

	var prompts []string
	p := &recordingPrompter{
		scriptedPrompter: scriptedPrompter{answers: []string{"gABE", "n"}},
		prompts:          &prompts,
	}
	out, err := Run(context.Background(), p, Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if out.Name != "Gabe" {
		t.Errorf("Name: got %q, want %q", out.Name, "Gabe")
	}
	want := "Hi Gabe, do you want to go to the beach? (y/n): "
	if len(prompts) < 2 || prompts[1] != want {
		t.Errorf("beach prompt: got %q, want %q", prompts, want)
	}
}

type recordingPrompter struct {
	scriptedPrompter
	prompts *[]string
}

func (p *recordingPrompter) Ask(ctx context.Context, q Question) (string, error) {
	*p.prompts = append(*p.prompts, q.Prompt)
	return p.scriptedPrompter.Ask(ctx, q)
}

func TestRun_CurrencySymbol(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: []string{"gabe", "y", "80", "70", "y", "10", "2.5"}}
	out, err := Run(context.Background(), p, Options{CurrencySymbol: "€"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	want := "You can buy an ice cream and you will have €7.50 left."
	if !slices.Contains(p.said, want) {
		t.Errorf("said %q, want it to contain %q", p.said, want)
	}
	if out.Change != 7.5 {
		t.Errorf("Change: got %v, want 7.5", out.Change)
	}
}

func TestRun_InvalidNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		answers []string
		field   string
	}{
		{"current temperature", []string{"gabe", "y", "warm"}, QuestionCurrentTemp},
		{"minimum temperature", []string{"gabe", "y", "80", "7.5"}, QuestionMinTemp},
		{"cash", []string{"gabe", "y", "80", "70", "y", "lots"}, QuestionCash},
		{"ice cream cost", []string{"gabe", "y", "80", "70", "y", "5", "$3"}, QuestionIceCreamCost},
		{"infinite cash", []string{"gabe", "y", "80", "70", "y", "inf"}, QuestionCash},
		{"hex cost", []string{"gabe", "y", "80", "70", "y", "5", "0x1p3"}, QuestionIceCreamCost},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &scriptedPrompter{answers: tt.answers}
			out, err := Run(context.Background(), p, Options{})
			if err == nil {
				t.Fatal("expected error for malformed number")
			}
			if out != nil {
				t.Errorf("expected nil outcome on error, got %+v", out)
			}
			if !errors.Is(err, ErrInvalidNumber) {
				t.Errorf("errors.Is(err, ErrInvalidNumber) = false for %v", err)
			}
			var numErr *InvalidNumberError
			if !errors.As(err, &numErr) {
				t.Fatalf("expected *InvalidNumberError, got %T", err)
			}
			if numErr.Field != tt.field {
				t.Errorf("Field: got %q, want %q", numErr.Field, tt.field)
			}
		})
	}
}

func TestRun_PrompterErrorNamesQuestion(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: []string{"gabe", "y"}}
	_, err := Run(context.Background(), p, Options{})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
	if !strings.Contains(err.Error(), QuestionCurrentTemp) {
		t.Errorf("error %q should name %q", err, QuestionCurrentTemp)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &scriptedPrompter{answers: []string{"gabe", "n"}}
	_, err := Run(ctx, p, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(p.asked) != 0 {
		t.Errorf("no question should be asked after cancel, got %q", p.asked)
	}
}

func TestRun_LogsOutcome(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := &scriptedPrompter{answers: []string{"gabe", "y", "50", "70"}}
	if _, err := Run(context.Background(), p, Options{Logger: logger}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	logs := buf.String()
	for _, want := range []string{"question=min_temp", "decision=too_cold", "trip finished"} {
		if !strings.Contains(logs, want) {
			t.Errorf("logs missing %q:\n%s", want, logs)
		}
	}
}
