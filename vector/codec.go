package vector

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Codec converts vectors to a stable byte form and back. The encoding
// is an element count followed by length-delimited element records in
// index order; trie shape and shift never leak into the bytes. Decode
// rebuilds by appending, so the result is structurally canonical
// whatever produced the input.
type Codec[T any] struct {
	Marshal   func(T) ([]byte, error)
	Unmarshal func([]byte) (T, error)
}

// JSONCodec returns a Codec that renders elements as JSON.
func JSONCodec[T any]() Codec[T] {
	return Codec[T]{
		Marshal: func(v T) ([]byte, error) { return json.Marshal(v) },
		Unmarshal: func(b []byte) (T, error) {
			var v T
			err := json.Unmarshal(b, &v)
			return v, err
		},
	}
}

// Encode renders v as bytes.
func (c Codec[T]) Encode(v *Vector[T]) ([]byte, error) {
	buf := protowire.AppendVarint(nil, uint64(v.Len()))
	for i, val := range v.All() {
		b, err := c.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("marshal element %d: %w", i, err)
		}
		buf = protowire.AppendBytes(buf, b)
	}
	return buf, nil
}

// Decode rebuilds a vector from bytes produced by Encode.
func (c Codec[T]) Decode(data []byte) (*Vector[T], error) {
	count, n := protowire.ConsumeVarint(data)
	if n < 0 {
		return nil, fmt.Errorf("decode element count: %w", protowire.ParseError(n))
	}
	data = data[n:]
	tr := Empty[T]().Transient()
	for i := uint64(0); i < count; i++ {
		b, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, fmt.Errorf("decode element %d: %w", i, protowire.ParseError(n))
		}
		data = data[n:]
		val, err := c.Unmarshal(b)
		if err != nil {
			return nil, fmt.Errorf("unmarshal element %d: %w", i, err)
		}
		tr.Append(val)
	}
	if len(data) != 0 {
		return nil, fmt.Errorf("decode: %d trailing bytes after %d elements", len(data), count)
	}
	return tr.ToImmutable(), nil
}
