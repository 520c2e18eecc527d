package expr

import (
	"fmt"

	"github.com/seeksim/seeksim/stack"
)

// EvalPrefix evaluates a prefix expression over single-digit operands
// with integer arithmetic ("+23" is 2+3). The expression is scanned
// right to left; operators are + - * /, division truncates toward zero.
// Whitespace is skipped.
func EvalPrefix(expression string) (int, error) {
	operands := stack.New[int](len(expression))

	for i := len(expression) - 1; i >= 0; i-- {
		c := expression[i]
		switch {
		case c == ' ' || c == '\t':
			continue
		case c >= '0' && c <= '9':
			if err := operands.Push(int(c - '0')); err != nil {
				return 0, fmt.Errorf("operand stack: %w", err)
			}
		case c == '+' || c == '-' || c == '*' || c == '/':
			a, err := operands.Pop()
			if err != nil {
				return 0, fmt.Errorf("%w: operator %q at position %d is missing operands", ErrMalformed, string(c), i)
			}
			b, err := operands.Pop()
			if err != nil {
				return 0, fmt.Errorf("%w: operator %q at position %d is missing operands", ErrMalformed, string(c), i)
			}
			v, err := apply(c, a, b)
			if err != nil {
				return 0, err
			}
			if err := operands.Push(v); err != nil {
				return 0, fmt.Errorf("operand stack: %w", err)
			}
		default:
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidToken, string(c), i)
		}
	}

	result, err := operands.Pop()
	if err != nil {
		return 0, fmt.Errorf("%w: empty expression", ErrMalformed)
	}
	if !operands.IsEmpty() {
		return 0, fmt.Errorf("%w: %d leftover operands", ErrMalformed, operands.Len())
	}
	return result, nil
}

func apply(op byte, a, b int) (int, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidToken, string(op))
}
