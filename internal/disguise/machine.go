package disguise

import (
	"errors"

	"stegcalc/internal/calculator"
	"stegcalc/internal/domain"
)

// UnlockSecret is the code that reveals the covert tool. It is a plain
// shared secret compiled into the binary; anyone holding the binary can
// recover it.
const UnlockSecret = "987654"

// ErrNotCalculator is returned for calculator keys while the covert tool is
// shown.
var ErrNotCalculator = errors.New("disguise: calculator is not active")

// ReturnPolicy decides what Back does to covert-tool state.
type ReturnPolicy int

const (
	// KeepCovertState leaves form fields and displayed plaintext untouched.
	KeepCovertState ReturnPolicy = iota
	// ClearCovertState resets every registered Resetter on the way back.
	ClearCovertState
)

// String returns the config spelling of the policy.
func (p ReturnPolicy) String() string {
	if p == ClearCovertState {
		return "clear"
	}
	return "keep"
}

// Option configures a Machine.
type Option func(*Machine)

// WithReturnPolicy sets the policy applied by Back.
func WithReturnPolicy(p ReturnPolicy) Option {
	return func(m *Machine) { m.policy = p }
}

// WithResetters registers covert-tool state to clear under ClearCovertState.
func WithResetters(rs ...domain.Resetter) Option {
	return func(m *Machine) { m.resetters = append(m.resetters, rs...) }
}

// OnTransition registers fn to run after every mode change.
func OnTransition(fn func(from, to domain.Mode)) Option {
	return func(m *Machine) { m.observers = append(m.observers, fn) }
}

// Machine is the disguise state machine. It starts in calculator mode and
// has no terminal state. It is driven from a single goroutine.
type Machine struct {
	mode      domain.Mode
	calc      *calculator.Engine
	policy    ReturnPolicy
	resetters []domain.Resetter
	observers []func(from, to domain.Mode)
}

// New returns a machine showing a fresh calculator.
func New(opts ...Option) *Machine {
	m := &Machine{
		mode: domain.ModeCalculator,
		calc: calculator.New(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Register adds a Resetter after construction.
func (m *Machine) Register(r domain.Resetter) { m.resetters = append(m.resetters, r) }

// Mode returns the active presentation.
func (m *Machine) Mode() domain.Mode { return m.mode }

// Policy returns the configured return policy.
func (m *Machine) Policy() ReturnPolicy { return m.policy }

// Calculator returns the calculator state.
func (m *Machine) Calculator() calculator.State { return m.calc.State() }

// Display returns what the calculator screen shows.
func (m *Machine) Display() string { return m.calc.Display() }

// Digit forwards a digit or point key to the calculator.
func (m *Machine) Digit(ch rune) error {
	if m.mode != domain.ModeCalculator {
		return ErrNotCalculator
	}
	return m.calc.EnterDigitOrPoint(ch)
}

// Operator forwards an operator key to the calculator.
func (m *Machine) Operator(op calculator.Operator) error {
	if m.mode != domain.ModeCalculator {
		return ErrNotCalculator
	}
	return m.calc.EnterOperator(op)
}

// Backspace forwards the backspace key to the calculator.
func (m *Machine) Backspace() {
	if m.mode == domain.ModeCalculator {
		m.calc.Backspace()
	}
}

// Clear forwards the clear key to the calculator.
func (m *Machine) Clear() {
	if m.mode == domain.ModeCalculator {
		m.calc.Clear()
	}
}

// Equals handles the equals key and reports whether it unlocked the covert
// tool. The unlock predicate is checked before the calculator's own
// "nothing pending" no-op, since a bare code has no operator pending.
func (m *Machine) Equals() bool {
	if m.mode != domain.ModeCalculator {
		return false
	}
	if m.unlockable() {
		m.calc.Reset()
		m.transition(domain.ModeCovertTool)
		return true
	}
	m.calc.EnterEquals()
	return false
}

// Back returns to the calculator. It is a no-op in calculator mode.
func (m *Machine) Back() {
	if m.mode != domain.ModeCovertTool {
		return
	}
	m.calc.Reset()
	if m.policy == ClearCovertState {
		for _, r := range m.resetters {
			r.Reset()
		}
	}
	m.transition(domain.ModeCalculator)
}

func (m *Machine) unlockable() bool {
	st := m.calc.State()
	return st.Operator == calculator.None && st.Input == UnlockSecret
}

func (m *Machine) transition(to domain.Mode) {
	from := m.mode
	m.mode = to
	for _, fn := range m.observers {
		fn(from, to)
	}
}
