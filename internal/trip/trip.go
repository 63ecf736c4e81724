package trip

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Options configures a run.
type Options struct {
	// CurrencySymbol prefixes the change amount. Empty means DefaultCurrencySymbol.
	CurrencySymbol string
	// Logger receives debug records for every answer and the final outcome.
	// Nil discards them.
	Logger *slog.Logger
}

// session carries the per-run state shared by the steps of Run.
type session struct {
	ctx      context.Context
	prompter Prompter
	logger   *slog.Logger
	outcome  *Outcome
}

// Run asks the beach-day questions through p and prints the matching
// messages. It returns after the final message of whichever branch was
// taken. An answer that cannot be parsed as a number ends the run with an
// *InvalidNumberError. The context is checked before every question.
func Run(ctx context.Context, p Prompter, opts Options) (*Outcome, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	symbol := opts.CurrencySymbol
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}

	s := &session{ctx: ctx, prompter: p, logger: logger, outcome: &Outcome{}}
	out := s.outcome

	name, err := s.ask(FirstNameQuestion())
	if err != nil {
		return nil, err
	}
	out.Name = Capitalize(name)

	beach, err := s.ask(BeachQuestion(out.Name))
	if err != nil {
		return nil, err
	}
	if !IsYes(beach) {
		out.Decision = DecisionStayHome
		return s.finish(Message{Text: MsgStayHome, Tone: ToneInfo})
	}

	if out.CurrentTemp, err = s.askInt(CurrentTempQuestion()); err != nil {
		return nil, err
	}
	if out.MinTemp, err = s.askInt(MinTempQuestion()); err != nil {
		return nil, err
	}
	if out.CurrentTemp < out.MinTemp {
		out.Decision = DecisionTooCold
		return s.finish(Message{Text: MsgTooCold, Tone: ToneBad})
	}

	out.Decision = DecisionBeach
	if err := s.say(Message{Text: fmt.Sprintf(MsgCanGo, out.CurrentTemp), Tone: ToneGood}); err != nil {
		return nil, err
	}

	if err := s.iceCream(symbol); err != nil {
		return nil, err
	}

	// Printed whatever happened with the ice cream, including a decline.
	return s.finish(Message{Text: MsgEnjoyBeach, Tone: ToneGood})
}

// iceCream runs the optional ice-cream branch.
func (s *session) iceCream(symbol string) error {
	out := s.outcome

	answer, err := s.ask(IceCreamQuestion())
	if err != nil {
		return err
	}
	if !IsYes(answer) {
		out.IceCream = IceCreamDeclined
		return nil
	}

	if out.Cash, err = s.askMoney(CashQuestion()); err != nil {
		return err
	}
	if out.Cash <= 0 {
		out.IceCream = IceCreamNoCash
		return s.say(Message{Text: MsgBringCash, Tone: ToneBad})
	}

	if out.Cost, err = s.askMoney(IceCreamCostQuestion()); err != nil {
		return err
	}
	if out.Cash < out.Cost {
		out.IceCream = IceCreamTooExpensive
		return s.say(Message{Text: MsgNoIceCream, Tone: ToneBad})
	}

	out.IceCream = IceCreamBought
	out.Change = out.Cash - out.Cost
	return s.say(Message{Text: fmt.Sprintf(MsgChange, symbol, out.Change), Tone: ToneGood})
}

func (s *session) ask(q Question) (string, error) {
	if err := s.ctx.Err(); err != nil {
		return "", err
	}
	answer, err := s.prompter.Ask(s.ctx, q)
	if err != nil {
		return "", fmt.Errorf("ask %s: %w", q.ID, err)
	}
	s.logger.Debug("answer received", "question", q.ID, "kind", q.Kind.String(), "answer", answer)
	return answer, nil
}

func (s *session) askInt(q Question) (int, error) {
	answer, err := s.ask(q)
	if err != nil {
		return 0, err
	}
	return ParseInt(q.ID, answer)
}

func (s *session) askMoney(q Question) (float64, error) {
	answer, err := s.ask(q)
	if err != nil {
		return 0, err
	}
	return ParseMoney(q.ID, answer)
}

func (s *session) say(m Message) error {
	if err := s.prompter.Say(m); err != nil {
		return fmt.Errorf("print message: %w", err)
	}
	s.outcome.Messages = append(s.outcome.Messages, m)
	return nil
}

// finish prints the last message and logs the outcome.
func (s *session) finish(m Message) (*Outcome, error) {
	if err := s.say(m); err != nil {
		return nil, err
	}
	s.logger.Debug("trip finished",
		"name", s.outcome.Name,
		"decision", string(s.outcome.Decision),
		"ice_cream", string(s.outcome.IceCream),
	)
	return s.outcome, nil
}
