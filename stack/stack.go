// Package stack provides a fixed-capacity LIFO container.
package stack

import "errors"

var (
	// ErrOverflow is returned by Push when the stack is at capacity.
	ErrOverflow = errors.New("stack overflow")
	// ErrUnderflow is returned by Pop and Peek when the stack is empty.
	ErrUnderflow = errors.New("stack underflow")
)

// Stack is a bounded last-in-first-out container. The capacity is fixed
// at construction; a zero or negative capacity yields a stack that
// rejects every Push.
type Stack[T any] struct {
	items    []T
	capacity int
}

// New creates an empty stack holding at most capacity elements.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{capacity: capacity}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) error {
	if s.IsFull() {
		return ErrOverflow
	}
	s.items = append(s.items, v)
	return nil
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrUnderflow
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrUnderflow
	}
	return s.items[len(s.items)-1], nil
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Cap returns the fixed capacity.
func (s *Stack[T]) Cap() int {
	return s.capacity
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// IsFull reports whether another Push would overflow.
func (s *Stack[T]) IsFull() bool {
	return len(s.items) >= s.capacity
}
