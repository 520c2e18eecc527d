// Package expr implements two classroom expression exercises on top of
// the bounded stack: an infix-to-postfix converter and a prefix-notation
// evaluator.
package expr

import "errors"

var (
	// ErrMalformed is returned for expressions that cannot be evaluated
	// as written: empty input, truncated operators, leftover operands.
	ErrMalformed = errors.New("malformed expression")
	// ErrInvalidToken is returned when a character is outside the
	// accepted alphabet.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnbalancedParens is returned for unmatched parentheses.
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
	// ErrDivideByZero is returned when evaluation divides by zero.
	ErrDivideByZero = errors.New("division by zero")
)
