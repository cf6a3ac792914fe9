// Package calculator implements the four-function evaluator shown in
// calculator mode.
//
// The Engine keeps a single State value and mutates it only through the key
// operations (EnterDigitOrPoint, EnterOperator, EnterEquals, Backspace,
// Clear). Arithmetic follows the semantics of a pocket calculator:
//
//   - Entering an operator while another is pending folds the running
//     computation first.
//   - Division by zero shows ErrorDisplay instead of a number. The sentinel is
//     not special-cased afterwards: it parses to NaN, and NaN propagates.
//   - Equals with no pending operator, or straight after an operator, is a
//     no-op.
//
// Unlock detection is not done here; see package disguise.
package calculator
