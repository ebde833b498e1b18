package collections

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	q := NewQueue[int]()
	require.Equal(t, true, q.IsEmpty())
	_, ok := q.Pop()
	require.Equal(t, false, ok)
	q.Push(1)
	q.Push(2)
	q.Push(3)
	require.Equal(t, 3, q.Size())
	v, ok := q.Peek()
	require.Equal(t, true, ok)
	require.Equal(t, 1, v)
	v, _ = q.Pop()
	require.Equal(t, 1, v)
	v, _ = q.Pop()
	require.Equal(t, 2, v)
	q.Push(4)
	v, _ = q.Pop()
	require.Equal(t, 3, v)
	v, _ = q.Pop()
	require.Equal(t, 4, v)
	require.Equal(t, true, q.IsEmpty())
}

func TestQueueWrapAndGrow(t *testing.T) {
	q := NewQueue[int]()
	for i := 0; i < 5; i++ {
		q.Push(i)
	}
	for i := 0; i < 5; i++ {
		v, _ := q.Pop()
		require.Equal(t, i, v)
	}
	// head now sits in the middle of the buffer
	for i := 0; i < 20; i++ {
		q.Push(i)
	}
	require.Equal(t, 20, q.Size())
	require.Equal(t, "[0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19]", fmt.Sprint(q))
	for i := 0; i < 20; i++ {
		v, ok := q.Pop()
		require.Equal(t, true, ok)
		require.Equal(t, i, v)
	}
	require.Equal(t, 0, q.Size())
}
