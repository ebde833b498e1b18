package collections

import "fmt"

type Stack[V any] interface {
	Push(V)
	// Pop removes the top element. ok is false when the stack is empty.
	Pop() (v V, ok bool)
	Peek() (v V, ok bool)
	Size() int
	IsEmpty() bool
}

type stack[V any] struct {
	entries []V
}

func NewStack[V any]() Stack[V] {
	return &stack[V]{
		entries: make([]V, 0, 8),
	}
}

func (s *stack[V]) Push(v V) {
	s.entries = append(s.entries, v)
}

func (s *stack[V]) Pop() (v V, ok bool) {
	n := len(s.entries)
	if n == 0 {
		return v, false
	}
	v = s.entries[n-1]
	var zero V
	s.entries[n-1] = zero
	s.entries = s.entries[:n-1]
	return v, true
}

func (s *stack[V]) Peek() (v V, ok bool) {
	n := len(s.entries)
	if n == 0 {
		return v, false
	}
	return s.entries[n-1], true
}

func (s *stack[V]) Size() int {
	return len(s.entries)
}

func (s *stack[V]) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s stack[V]) String() string {
	return fmt.Sprint(s.entries)
}
