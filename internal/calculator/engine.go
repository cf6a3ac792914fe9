package calculator

import (
	"errors"
	"math"
	"strconv"
)

// ErrorDisplay is what the display shows after a division by zero.
const ErrorDisplay = "Error"

var (
	// ErrInvalidKey is returned for keys the engine does not understand.
	ErrInvalidKey = errors.New("calculator: invalid key")
)

// Operator is a pending binary operation.
type Operator int

const (
	None Operator = iota
	Add
	Sub
	Mul
	Div
)

// ParseOperator maps a key to its operator.
func ParseOperator(r rune) (Operator, bool) {
	switch r {
	case '+':
		return Add, true
	case '-':
		return Sub, true
	case '*', 'x', '×':
		return Mul, true
	case '/', '÷':
		return Div, true
	}
	return None, false
}

// String returns the key symbol of the operator.
func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return ""
	}
}

// State is everything the calculator remembers.
//
// Operator is set only while a first operand has been captured and a second
// one is being entered. PendingReset is true exactly when the next digit
// starts a fresh number instead of appending.
type State struct {
	Input        string
	Operator     Operator
	First        float64
	HasFirst     bool
	PendingReset bool
}

// Identity returns the state of a freshly switched-on calculator.
func Identity() State { return State{Input: "0"} }

// Engine is a stateful four-function evaluator. It is not safe for
// concurrent use.
type Engine struct {
	st State
}

// New returns an engine in the identity state.
func New() *Engine { return &Engine{st: Identity()} }

// State returns a copy of the current state.
func (e *Engine) State() State { return e.st }

// Display returns what the calculator screen shows.
func (e *Engine) Display() string { return e.st.Input }

// Reset returns the engine to Identity.
func (e *Engine) Reset() { e.st = Identity() }

// EnterDigitOrPoint appends a digit or decimal point. The input is replaced
// instead when it is the literal "0" or a reset is pending.
func (e *Engine) EnterDigitOrPoint(ch rune) error {
	if !(ch >= '0' && ch <= '9') && ch != '.' {
		return ErrInvalidKey
	}
	if e.st.Input == "0" || e.st.PendingReset {
		e.st.Input = string(ch)
		e.st.PendingReset = false
		return nil
	}
	e.st.Input += string(ch)
	return nil
}

// EnterOperator captures the current input as the first operand of op,
// folding any pending operation first.
func (e *Engine) EnterOperator(op Operator) error {
	if op == None {
		return ErrInvalidKey
	}
	if e.st.Operator != None {
		e.EnterEquals()
	}
	e.st.First = parseNumber(e.st.Input)
	e.st.HasFirst = true
	e.st.Operator = op
	e.st.PendingReset = true
	return nil
}

// EnterEquals applies the pending operator. It is a no-op when nothing is
// pending or no second operand has been entered yet.
func (e *Engine) EnterEquals() {
	if e.st.Operator == None || e.st.PendingReset {
		return
	}
	second := parseNumber(e.st.Input)
	e.st.Input = apply(e.st.First, second, e.st.Operator)
	e.st.Operator = None
	e.st.PendingReset = true
}

// Backspace drops the last character; an emptied input becomes "0".
func (e *Engine) Backspace() {
	if len(e.st.Input) <= 1 {
		e.st.Input = "0"
		return
	}
	e.st.Input = e.st.Input[:len(e.st.Input)-1]
}

// Clear resets input, operator and first operand. PendingReset is left
// alone; a "0" input is replaced by the next digit anyway.
func (e *Engine) Clear() {
	e.st.Input = "0"
	e.st.Operator = None
	e.st.First = 0
	e.st.HasFirst = false
}

func apply(a, b float64, op Operator) string {
	switch op {
	case Add:
		return formatNumber(a + b)
	case Sub:
		return formatNumber(a - b)
	case Mul:
		return formatNumber(a * b)
	case Div:
		if b == 0 {
			return ErrorDisplay
		}
		return formatNumber(a / b)
	}
	return ErrorDisplay
}

// parseNumber reads the longest numeric prefix of s. Strings without one,
// including ErrorDisplay, yield NaN.
func parseNumber(s string) float64 {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func formatNumber(v float64) string {
	abs := math.Abs(v)
	if abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
