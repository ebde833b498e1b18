package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	s := NewStack[*Mock]()
	s.Push(&Mock{
		A: "aa",
		B: 22,
	})
	s.Push(&Mock{
		A: "bb",
		B: 55,
	})
	require.Equal(t, 2, s.Size())
	top, ok := s.Pop()
	require.Equal(t, true, ok)
	require.Equal(t, &Mock{
		A: "bb",
		B: 55,
	}, top)
	require.Equal(t, 1, s.Size())
	peek, ok := s.Peek()
	require.Equal(t, true, ok)
	require.Equal(t, &Mock{
		A: "aa",
		B: 22,
	}, peek)
	top, _ = s.Pop()
	require.Equal(t, "aa", top.A)
	require.Equal(t, 0, s.Size())
	require.Equal(t, true, s.IsEmpty())
	top, ok = s.Pop()
	require.Equal(t, false, ok)
	require.Nil(t, top)
	_, ok = s.Peek()
	require.Equal(t, false, ok)
}
