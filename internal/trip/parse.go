package trip

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize returns s with its first character in title case and the rest
// in lower case. Surrounding whitespace is kept, so " gabe" stays " gabe".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	// Casers carry state and are created per call.
	head := cases.Title(language.Und).String(string(r))
	tail := cases.Lower(language.Und).String(s[size:])
	return head + tail
}

// IsYes reports whether answer means yes. Only "y" or "Y" qualify; "yes"
// and " y" are both no.
func IsYes(answer string) bool {
	return strings.ToLower(answer) == "y"
}

// ParseInt parses a whole-number answer. Surrounding whitespace is ignored
// and single underscores between digits are accepted as separators, so
// "1_000" is 1000. Values outside the int range are errors.
func ParseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(stripDigitSeparators(strings.TrimSpace(s)))
	if err != nil {
		return 0, &InvalidNumberError{Field: field, Input: s, Err: err}
	}
	return n, nil
}

// ParseMoney parses a currency amount. Surrounding whitespace and digit
// separators are handled as in ParseInt and the sign is not checked. Hex
// floats are rejected, as are infinities and NaN, including decimals too
// large for a float64.
func ParseMoney(field, s string) (float64, error) {
	t := stripDigitSeparators(strings.TrimSpace(s))
	if isHex(t) {
		return 0, &InvalidNumberError{Field: field, Input: s, Err: numError(t, strconv.ErrSyntax)}
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, &InvalidNumberError{Field: field, Input: s, Err: err}
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &InvalidNumberError{Field: field, Input: s, Err: numError(t, strconv.ErrRange)}
	}
	return f, nil
}

// stripDigitSeparators removes underscores that sit between two digits.
// Any other underscore is left in place so the parse fails on it.
func stripDigitSeparators(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' && i > 0 && i < len(s)-1 && isDigit(s[i-1]) && isDigit(s[i+1]) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isHex reports whether s, after an optional sign, has a 0x prefix.
func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func numError(s string, err error) *strconv.NumError {
	return &strconv.NumError{Func: "ParseFloat", Num: s, Err: err}
}

// Validator returns a check for answers of the given kind, or nil when any
// answer is acceptable. Interactive front ends use it to reject bad input
// before it reaches Run.
func Validator(q Question) func(string) error {
	switch q.Kind {
	case KindInt:
		return func(s string) error {
			_, err := ParseInt(q.ID, s)
			return err
		}
	case KindMoney:
		return func(s string) error {
			_, err := ParseMoney(q.ID, s)
			return err
		}
	default:
		return nil
	}
}
