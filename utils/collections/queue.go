package collections

import (
	"fmt"
)

type Queue[V any] interface {
	Push(V)
	// Pop removes the oldest element. ok is false when the queue is empty.
	Pop() (v V, ok bool)
	Peek() (v V, ok bool)
	Size() int
	IsEmpty() bool
}

// queue is a ring buffer doubling its capacity when full.
type queue[V any] struct {
	entries []V
	head    int
	size    int
}

func NewQueue[V any]() Queue[V] {
	return &queue[V]{
		entries: make([]V, 8),
	}
}

func (q *queue[V]) Push(v V) {
	if q.size == len(q.entries) {
		entries := make([]V, 2*len(q.entries))
		n := copy(entries, q.entries[q.head:])
		copy(entries[n:], q.entries[:q.head])
		q.entries = entries
		q.head = 0
	}
	q.entries[(q.head+q.size)%len(q.entries)] = v
	q.size++
}

func (q *queue[V]) Pop() (v V, ok bool) {
	if q.size == 0 {
		return v, false
	}
	v = q.entries[q.head]
	var zero V
	q.entries[q.head] = zero
	q.head = (q.head + 1) % len(q.entries)
	q.size--
	return v, true
}

func (q *queue[V]) Peek() (v V, ok bool) {
	if q.size == 0 {
		return v, false
	}
	return q.entries[q.head], true
}

func (q *queue[V]) Size() int {
	return q.size
}

func (q *queue[V]) IsEmpty() bool {
	return q.size == 0
}

func (q queue[V]) String() string {
	arr := make([]V, 0, q.size)
	for i := 0; i < q.size; i++ {
		arr = append(arr, q.entries[(q.head+i)%len(q.entries)])
	}
	return fmt.Sprint(arr)
}
