package treemap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeySet(t *testing.T) {
	t.Parallel()
	m := rangeMap(3, 1, 2)
	ks := m.Keys()
	require.Equal(t, 3, ks.Len())
	require.True(t, ks.Contains(2))
	require.False(t, ks.Contains(9))
	require.Equal(t, []int{1, 2, 3}, slices.Collect(ks.All()))
}

func TestKeySetEqual(t *testing.T) {
	t.Parallel()
	a := rangeMap(1, 2, 3).Keys()
	b := rangeMap(3, 2, 1).Keys()
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(rangeMap(1, 2).Keys()))
	require.False(t, a.Equal(rangeMap(1, 2, 4).Keys()))
}

func TestEntrySet(t *testing.T) {
	t.Parallel()
	m := rangeMap(2, 1)
	es := m.Entries()
	require.Equal(t, 2, es.Len())
	require.True(t, es.Contains(Entry[int, int]{1, 10}))
	require.False(t, es.Contains(Entry[int, int]{1, 99}))
	require.False(t, es.Contains(Entry[int, int]{9, 90}))
	require.Equal(t,
		[]Entry[int, int]{{1, 10}, {2, 20}},
		slices.Collect(es.All()))
}

func TestValuesView(t *testing.T) {
	t.Parallel()
	m := rangeMap(2, 1, 3)
	vs := m.Vals()
	require.Equal(t, 3, vs.Len())
	require.Equal(t, []int{10, 20, 30}, slices.Collect(vs.All()))
}

func TestViewsRejectWrites(t *testing.T) {
	t.Parallel()
	m := rangeMap(1)
	assert.PanicsWithError(t, ErrUnmodifiable.Error(), func() { m.Keys().Add(2) })
	assert.PanicsWithError(t, ErrUnmodifiable.Error(), func() { m.Keys().Remove(1) })
	assert.PanicsWithError(t, ErrUnmodifiable.Error(), func() { m.Entries().Add(Entry[int, int]{2, 20}) })
	assert.PanicsWithError(t, ErrUnmodifiable.Error(), func() { m.Entries().Remove(Entry[int, int]{1, 10}) })
	assert.PanicsWithError(t, ErrUnmodifiable.Error(), func() { m.Vals().Add(5) })
	assert.PanicsWithError(t, ErrUnmodifiable.Error(), func() { m.Vals().Remove(10) })
}

func TestViewTracksOneVersion(t *testing.T) {
	t.Parallel()
	m := rangeMap(1, 2)
	ks := m.Keys()
	m.Assoc(3, 30) // derived version, view unaffected
	require.Equal(t, []int{1, 2}, slices.Collect(ks.All()))
}
