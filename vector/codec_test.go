package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()
	v := New("a", "b", "c")
	codec := JSONCodec[string]()
	encoded, err := codec.Encode(v)
	require.NoError(t, err)
	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	require.True(t, v.Equal(decoded))
}

func TestCodecEmptyVector(t *testing.T) {
	t.Parallel()
	codec := JSONCodec[int]()
	encoded, err := codec.Encode(Empty[int]())
	require.NoError(t, err)
	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, 0, decoded.Len())
}

func TestCodecIndependentOfTrieShape(t *testing.T) {
	t.Parallel()
	// Same elements, different histories: one grown by appends, one
	// popped down from a larger vector. The bytes must agree.
	grown := rangeVector(40)
	popped := rangeVector(45).Pop().Pop().Pop().Pop().Pop()
	codec := JSONCodec[int]()
	a, err := codec.Encode(grown)
	require.NoError(t, err)
	b, err := codec.Encode(popped)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestCodecLargeRoundTrip(t *testing.T) {
	t.Parallel()
	v := rangeVector(1056)
	codec := JSONCodec[int]()
	encoded, err := codec.Encode(v)
	require.NoError(t, err)
	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	require.True(t, v.Equal(decoded))
}

func TestCodecRejectsTruncatedInput(t *testing.T) {
	t.Parallel()
	codec := JSONCodec[int]()
	encoded, err := codec.Encode(New(1, 2, 3))
	require.NoError(t, err)
	_, err = codec.Decode(encoded[:len(encoded)-1])
	require.Error(t, err)
}

func TestCodecRejectsTrailingBytes(t *testing.T) {
	t.Parallel()
	codec := JSONCodec[int]()
	encoded, err := codec.Encode(New(1))
	require.NoError(t, err)
	_, err = codec.Decode(append(encoded, 0x00))
	require.Error(t, err)
}
