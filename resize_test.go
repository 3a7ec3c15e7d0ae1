package arrx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResize(t *testing.T) {
	s := Of(1, 2, 3)

	assert.True(t, Equal(Of(1, 2, 3, 42, 42), s.Resize(5, 42)))
	assert.True(t, Equal(Of(1, 2), s.Resize(2, 42)))
	assert.True(t, Equal(Of(1, 2, 3, 4, 5, 6), s.ResizeWith(6, func(i int) int { return i + 1 })))
	assert.Equal(t, 0, s.Resize(0, 1).Len())
	assert.True(t, Equal(Of(0, 0, 0), Of[int]().Resize(3, 0)))
	assert.True(t, Equal(Of(1, 2, 3), s), "source must be untouched")

	require.Panics(t, func() { s.Resize(-1, 0) })
	require.Panics(t, func() { s.ResizeWith(-1, func(i int) int { return i }) })
}

func TestConcat(t *testing.T) {
	a := Of(11, 22, 33)
	b := Of(40, 50)

	assert.True(t, Equal(Of(11, 22, 33, 40, 50), a.Concat(b)))
	assert.True(t, Equal(a, a.Concat(Of[int]())))
	assert.True(t, Equal(b, Of[int]().Concat(b)))
}

func TestSplit(t *testing.T) {
	s := Of(11, 22, 33, 40, 50)

	head, tail := s.Split(3)
	assert.True(t, Equal(Of(11, 22, 33), head))
	assert.True(t, Equal(Of(40, 50), tail))

	head, tail = s.Split(0)
	assert.True(t, head.IsEmpty())
	assert.True(t, Equal(s, tail))

	head, tail = s.Split(5)
	assert.True(t, Equal(s, head))
	assert.True(t, tail.IsEmpty())

	require.Panics(t, func() { s.Split(6) })
	require.Panics(t, func() { s.Split(-1) })
}
