package expr

import (
	"fmt"
	"strings"

	"github.com/seeksim/seeksim/stack"
)

// isOperand reports whether c is a single-letter operand.
func isOperand(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// InfixToPostfix converts a single-letter-operand infix expression to
// postfix notation. Operators are + - * / with the usual precedence,
// left associative; parentheses group. Whitespace is skipped.
//
// Operand/operator arity is not checked: the converter reorders tokens,
// it does not parse a grammar.
func InfixToPostfix(infix string) (string, error) {
	if strings.TrimSpace(infix) == "" {
		return "", fmt.Errorf("%w: empty input", ErrMalformed)
	}

	ops := stack.New[byte](len(infix))
	var out strings.Builder

	for i := 0; i < len(infix); i++ {
		c := infix[i]
		switch {
		case c == ' ' || c == '\t':
			continue
		case isOperand(c):
			out.WriteByte(c)
		case c == '(':
			if err := ops.Push(c); err != nil {
				return "", fmt.Errorf("operator stack: %w", err)
			}
		case c == ')':
			// Unwind to the matching open paren.
			for {
				top, err := ops.Pop()
				if err != nil {
					return "", fmt.Errorf("%w: unmatched %q", ErrUnbalancedParens, ")")
				}
				if top == '(' {
					break
				}
				out.WriteByte(top)
			}
		case c == '+' || c == '-':
			// Lowest precedence: unwind every stacked operator in scope.
			for !ops.IsEmpty() {
				top, _ := ops.Peek()
				if top == '(' {
					break
				}
				popped, _ := ops.Pop()
				out.WriteByte(popped)
			}
			if err := ops.Push(c); err != nil {
				return "", fmt.Errorf("operator stack: %w", err)
			}
		case c == '*' || c == '/':
			// Unwind only operators of equal precedence.
			for !ops.IsEmpty() {
				top, _ := ops.Peek()
				if top != '*' && top != '/' {
					break
				}
				popped, _ := ops.Pop()
				out.WriteByte(popped)
			}
			if err := ops.Push(c); err != nil {
				return "", fmt.Errorf("operator stack: %w", err)
			}
		default:
			return "", fmt.Errorf("%w: %q at position %d", ErrInvalidToken, string(c), i)
		}
	}

	for !ops.IsEmpty() {
		top, _ := ops.Pop()
		if top == '(' {
			return "", fmt.Errorf("%w: unmatched %q", ErrUnbalancedParens, "(")
		}
		out.WriteByte(top)
	}

	return out.String(), nil
}
