package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListIteratorForward(t *testing.T) {
	t.Parallel()
	v := rangeVector(100)
	it := v.ListIterator()
	require.False(t, it.HasPrev())
	for i := 0; i < 100; i++ {
		require.True(t, it.HasNext())
		require.Equal(t, i, it.Index())
		val, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, i, val)
	}
	require.False(t, it.HasNext())
	_, ok := it.Next()
	require.False(t, ok)
}

func TestListIteratorBackward(t *testing.T) {
	t.Parallel()
	v := rangeVector(100)
	it := v.ListIteratorAt(100)
	require.False(t, it.HasNext())
	for i := 99; i >= 0; i-- {
		require.True(t, it.HasPrev())
		val, ok := it.Prev()
		require.True(t, ok)
		require.Equal(t, i, val)
	}
	require.False(t, it.HasPrev())
	_, ok := it.Prev()
	require.False(t, ok)
}

// Reversing direction right at a 32-slot boundary must reload the
// correct backing array.
func TestListIteratorTurnsAtChunkBoundary(t *testing.T) {
	t.Parallel()
	v := rangeVector(70)
	it := v.ListIteratorAt(32)
	val, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 32, val)
	val, ok = it.Prev()
	require.True(t, ok)
	require.Equal(t, 32, val)
	val, ok = it.Prev()
	require.True(t, ok)
	require.Equal(t, 31, val)
	val, ok = it.Next()
	require.True(t, ok)
	require.Equal(t, 31, val)
}

func TestListIteratorAtBounds(t *testing.T) {
	t.Parallel()
	v := rangeVector(3)
	assert.PanicsWithError(t, ErrOutOfBounds.Error(), func() { v.ListIteratorAt(-1) })
	assert.PanicsWithError(t, ErrOutOfBounds.Error(), func() { v.ListIteratorAt(4) })
	it := v.ListIteratorAt(3)
	require.False(t, it.HasNext())
	require.True(t, it.HasPrev())
}

func TestListIteratorZigZag(t *testing.T) {
	t.Parallel()
	v := rangeVector(1056)
	it := v.ListIterator()
	for i := 0; i < v.Len(); i++ {
		val, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, i, val)
		if i%97 == 0 && it.HasPrev() {
			back, ok := it.Prev()
			require.True(t, ok)
			require.Equal(t, i, back)
			again, ok := it.Next()
			require.True(t, ok)
			require.Equal(t, i, again)
		}
	}
	require.False(t, it.HasNext())
}
