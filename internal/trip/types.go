// Package trip implements the beach-day decision script: it asks whether the
// user wants to go to the beach, checks the temperature, optionally walks
// through buying an ice cream, and reports what the user can do.
package trip

import (
	"context"
	"errors"
	"fmt"
)

// Kind describes how an answer to a question is interpreted.
type Kind int

const (
	// KindText is free text, used verbatim.
	KindText Kind = iota
	// KindYesNo is a yes/no answer; only "y" in any case means yes.
	KindYesNo
	// KindInt is a whole number such as a temperature.
	KindInt
	// KindMoney is a decimal currency amount.
	KindMoney
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindYesNo:
		return "yes/no"
	case KindInt:
		return "integer"
	case KindMoney:
		return "money"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Question is a single prompt shown to the user.
type Question struct {
	ID     string // Stable identifier, used in logs and errors
	Kind   Kind   // How the answer is parsed
	Prompt string // Text shown to the user, printed verbatim
}

// Tone classifies a message so front ends can style it.
type Tone int

const (
	// ToneInfo is a neutral message.
	ToneInfo Tone = iota
	// ToneGood is a message about something the user gets to do.
	ToneGood
	// ToneBad is a message about something the user cannot do.
	ToneBad
)

// Message is a line of output addressed to the user.
type Message struct {
	Text string
	Tone Tone
}

// Prompter is the user-facing side of a run. Ask returns the raw answer
// text; parsing happens in this package.
type Prompter interface {
	Ask(ctx context.Context, q Question) (string, error)
	Say(m Message) error
}

// Decision is the top-level result of a run.
type Decision string

const (
	// DecisionStayHome means the user did not want to go to the beach.
	DecisionStayHome Decision = "stay_home"
	// DecisionTooCold means it was colder than the user's minimum.
	DecisionTooCold Decision = "too_cold"
	// DecisionBeach means the user is going to the beach.
	DecisionBeach Decision = "beach"
)

// IceCream is the outcome of the ice-cream branch.
type IceCream string

const (
	// IceCreamNone means the ice-cream question was never asked.
	IceCreamNone IceCream = ""
	// IceCreamDeclined means the user did not want an ice cream.
	IceCreamDeclined IceCream = "declined"
	// IceCreamBought means the user had enough cash.
	IceCreamBought IceCream = "bought"
	// IceCreamTooExpensive means the ice cream cost more than the cash on hand.
	IceCreamTooExpensive IceCream = "too_expensive"
	// IceCreamNoCash means the user had no cash (zero or less).
	IceCreamNoCash IceCream = "no_cash"
)

// Outcome summarises a completed run. Fields for questions that were not
// asked keep their zero value.
type Outcome struct {
	Name        string
	Decision    Decision
	IceCream    IceCream
	CurrentTemp int
	MinTemp     int
	Cash        float64
	Cost        float64
	Change      float64
	Messages    []Message
}

// ErrInvalidNumber is the sentinel wrapped by InvalidNumberError.
var ErrInvalidNumber = errors.New("trip: invalid number")

// InvalidNumberError reports an answer that could not be parsed as the
// number the question asked for.
type InvalidNumberError struct {
	Field string // Question ID
	Input string // Raw answer
	Err   error  // Underlying strconv error
}

// Error implements the error interface.
func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number for %s: %q", e.Field, e.Input)
}

// Unwrap returns ErrInvalidNumber so callers can use errors.Is.
func (e *InvalidNumberError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidNumber}
	}
	return []error{ErrInvalidNumber, e.Err}
}
