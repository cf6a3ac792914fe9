package calculator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"stegcalc/internal/calculator"
)

func press(t *testing.T, e *calculator.Engine, keys string) {
	t.Helper()
	for _, k := range keys {
		switch {
		case k == '=':
			e.EnterEquals()
		case k == '<':
			e.Backspace()
		case k == 'C':
			e.Clear()
		default:
			if op, ok := calculator.ParseOperator(k); ok {
				require.NoError(t, e.EnterOperator(op))
				continue
			}
			require.NoError(t, e.EnterDigitOrPoint(k), "key %q", k)
		}
	}
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		keys string
		want string
	}{
		{"2+3=", "5"},
		{"9-12=", "-3"},
		{"6*7=", "42"},
		{"7/2=", "3.5"},
		{"0.1+0.2=", "0.30000000000000004"},
		{"2+3*4=", "20"},
		{"1.5*2=", "3"},
	}
	for _, tc := range cases {
		e := calculator.New()
		press(t, e, tc.keys)
		require.Equal(t, tc.want, e.Display(), "keys %q", tc.keys)
	}
}

func TestDigitReplacesZeroAndPendingReset(t *testing.T) {
	e := calculator.New()
	press(t, e, "0")
	require.Equal(t, "0", e.Display())
	press(t, e, "7")
	require.Equal(t, "7", e.Display())

	press(t, e, "+")
	require.True(t, e.State().PendingReset)
	press(t, e, "8")
	require.Equal(t, "8", e.Display())
	require.False(t, e.State().PendingReset)

	press(t, e, "=1")
	require.Equal(t, "1", e.Display(), "digit after a result starts a fresh number")
}

func TestEqualsNoOp(t *testing.T) {
	e := calculator.New()
	press(t, e, "42=")
	require.Equal(t, calculator.State{Input: "42"}, e.State())

	e = calculator.New()
	press(t, e, "42+=")
	st := e.State()
	require.Equal(t, "42", st.Input)
	require.Equal(t, calculator.Add, st.Operator)
	require.True(t, st.PendingReset)
}

func TestDivisionByZeroShowsSentinel(t *testing.T) {
	for _, keys := range []string{"5/0=", "0/0=", "12.5/0.0="} {
		e := calculator.New()
		press(t, e, keys)
		require.Equal(t, calculator.ErrorDisplay, e.Display(), "keys %q", keys)
		require.Equal(t, calculator.None, e.State().Operator)
	}
}

func TestSentinelPropagatesNaN(t *testing.T) {
	e := calculator.New()
	press(t, e, "5/0=")
	press(t, e, "+1=")
	require.Equal(t, "NaN", e.Display())
	require.True(t, math.IsNaN(e.State().First))
}

func TestBackspace(t *testing.T) {
	e := calculator.New()
	press(t, e, "7<")
	require.Equal(t, "0", e.Display())
	press(t, e, "<")
	require.Equal(t, "0", e.Display())
	press(t, e, "123<")
	require.Equal(t, "12", e.Display())
}

func TestClear(t *testing.T) {
	e := calculator.New()
	press(t, e, "12+34C")
	st := e.State()
	require.Equal(t, "0", st.Input)
	require.Equal(t, calculator.None, st.Operator)
	require.False(t, st.HasFirst)
}

func TestInvalidKeys(t *testing.T) {
	e := calculator.New()
	require.ErrorIs(t, e.EnterDigitOrPoint('a'), calculator.ErrInvalidKey)
	require.ErrorIs(t, e.EnterOperator(calculator.None), calculator.ErrInvalidKey)
	require.Equal(t, calculator.Identity(), e.State())
}

func TestMalformedNumberParsesPrefix(t *testing.T) {
	e := calculator.New()
	press(t, e, "1.5.3+1=")
	require.Equal(t, "2.5", e.Display())
}
