package hashing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	h := Identity[int]()
	require.Equal(t, 42, h(42))
	require.Equal(t, -2, h(-2))
}

func TestModulo(t *testing.T) {
	h := Modulo(10)
	require.Equal(t, 7, h(17))
	require.Equal(t, 0, h(100))
}

func TestConstant(t *testing.T) {
	h := Constant[string](5)
	require.Equal(t, 5, h("aa"))
	require.Equal(t, 5, h("bb"))
}

func TestXXH3(t *testing.T) {
	type name string
	h := XXH3[name]()
	require.Equal(t, h("aa"), h("aa"))
	require.NotEqual(t, h("aa"), h("bb"))
	require.GreaterOrEqual(t, h("aa"), 0)
}

func TestDefault(t *testing.T) {
	require.Equal(t, 17, Default[int]()(17))
	require.Equal(t, 200, Default[uint8]()(200))
	s := Default[string]()
	require.Equal(t, s("aa"), s("aa"))
	require.GreaterOrEqual(t, s("aa"), 0)
	type point struct {
		X, Y int
	}
	p := Default[point]()
	require.Equal(t, p(point{1, 2}), p(point{1, 2}))
	require.NotEqual(t, p(point{1, 2}), p(point{2, 1}))
	u := Default[uint64]()
	require.Equal(t, 6, u(6))
	require.Equal(t, 7, u(7))
	require.Equal(t, -1, u(^uint64(0)))
	require.Equal(t, 7, Default[uint]()(7))
}
