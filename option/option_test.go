package option

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSome(t *testing.T) {
	t.Parallel()
	o := Some("hello")
	require.True(t, o.IsPresent())
	require.Equal(t, "hello", o.Get())
	require.Equal(t, "hello", o.GetOrElse("other"))
	assert.Equal(t, `Some(hello)`, o.String())
}

func TestNone(t *testing.T) {
	t.Parallel()
	o := None[string]()
	require.False(t, o.IsPresent())
	require.Equal(t, "other", o.GetOrElse("other"))
	assert.Equal(t, "None", o.String())
	assert.PanicsWithError(t, ErrAbsent.Error(), func() { o.Get() })
}

func TestZeroValueIsAbsent(t *testing.T) {
	t.Parallel()
	var o Option[int]
	require.False(t, o.IsPresent())
}

func TestSomeOfNilPointer(t *testing.T) {
	t.Parallel()
	o := Some[*int](nil)
	require.True(t, o.IsPresent())
	require.Nil(t, o.Get())
}

func TestSomeOrNil(t *testing.T) {
	t.Parallel()
	three := 3
	require.Equal(t, Some(&three), SomeOrNil(&three))
	require.Equal(t, None[*int](), SomeOrNil[*int](nil))
	require.Equal(t, None[[]int](), SomeOrNil[[]int](nil))
	var m map[string]int
	require.Equal(t, None[map[string]int](), SomeOrNil(m))

	// Non-nilable types are always present, zero or not.
	require.Equal(t, Some(0), SomeOrNil(0))
	require.Equal(t, Some(""), SomeOrNil(""))
}

func TestMatch(t *testing.T) {
	t.Parallel()
	got := Match(Some(3),
		func(v int) string { return strconv.Itoa(v) },
		func() string { return "absent" })
	require.Equal(t, "3", got)
	got = Match(None[int](),
		func(v int) string { return strconv.Itoa(v) },
		func() string { return "absent" })
	require.Equal(t, "absent", got)
}

func TestThen(t *testing.T) {
	t.Parallel()
	half := func(v int) Option[int] {
		if v%2 != 0 {
			return None[int]()
		}
		return Some(v / 2)
	}
	require.Equal(t, Some(3), Then(Some(6), half))
	require.Equal(t, None[int](), Then(Some(7), half))
	require.Equal(t, None[int](), Then(None[int](), half))
}

func TestMap(t *testing.T) {
	t.Parallel()
	require.Equal(t, Some("7"), Map(Some(7), strconv.Itoa))
	require.Equal(t, None[string](), Map(None[int](), strconv.Itoa))
}
