package bitset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseBasic(t *testing.T) {
	universe := []int{4, 9, 15}
	s := NewSparse(universe)

	assert.False(t, s.Contains(9))
	s.Insert(9)
	assert.True(t, s.Contains(9))
	assert.False(t, s.Contains(4))
	assert.Equal(t, 1, s.Size())
}

func TestSparseDuplicateKeysCollapse(t *testing.T) {
	s := NewSparse([]int{1, 1, 2})
	s.Reset(^uint64(0))
	assert.Equal(t, 2, s.Size())
}

func TestSparseUnknownKeyPanics(t *testing.T) {
	s := NewSparse([]int{1, 2, 3})

	require.Panics(t, func() { s.Contains(99) })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrUnknownKey))
	}()
	s.Insert(99)
}

func TestSparseCombineSharedUniverse(t *testing.T) {
	universe := []string{"x", "y", "z"}
	a := NewSparse(universe)
	b := NewSparse(universe)
	a.Insert("x")
	a.Insert("y")
	b.Insert("y")
	b.Insert("z")

	require.Equal(t, 3, a.SizeUnion(b))

	a.Union(b)
	assert.True(t, a.Contains("z"))
	assert.Equal(t, 3, a.Size())
}
