package treemap

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/arborix/arbor/order"
)

// Codec converts maps to a stable byte form and back. The encoding is
// an entry count followed by length-delimited key and value records in
// ascending key order, so it depends only on the map's contents and
// ordering, never on the internal tree shape or node colors. Decode
// rebuilds through Assoc, which means bytes written by an older
// balancing strategy stay readable.
type Codec[K, V any] struct {
	MarshalKey   func(K) ([]byte, error)
	UnmarshalKey func([]byte) (K, error)
	MarshalVal   func(V) ([]byte, error)
	UnmarshalVal func([]byte) (V, error)
}

// JSONCodec returns a Codec that renders keys and values as JSON.
func JSONCodec[K, V any]() Codec[K, V] {
	return Codec[K, V]{
		MarshalKey: func(k K) ([]byte, error) { return json.Marshal(k) },
		UnmarshalKey: func(b []byte) (K, error) {
			var k K
			err := json.Unmarshal(b, &k)
			return k, err
		},
		MarshalVal: func(v V) ([]byte, error) { return json.Marshal(v) },
		UnmarshalVal: func(b []byte) (V, error) {
			var v V
			err := json.Unmarshal(b, &v)
			return v, err
		},
	}
}

// Encode renders m as bytes.
func (c Codec[K, V]) Encode(m *Map[K, V]) ([]byte, error) {
	buf := protowire.AppendVarint(nil, uint64(m.Len()))
	for k, v := range m.All() {
		kb, err := c.MarshalKey(k)
		if err != nil {
			return nil, fmt.Errorf("marshal key %v: %w", k, err)
		}
		vb, err := c.MarshalVal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal value for key %v: %w", k, err)
		}
		buf = protowire.AppendBytes(buf, kb)
		buf = protowire.AppendBytes(buf, vb)
	}
	return buf, nil
}

// Decode rebuilds a map from bytes produced by Encode, ordered by ord.
// The ordering is not part of the encoding and must match the one the
// map was built with.
func (c Codec[K, V]) Decode(data []byte, ord order.Ordering[K]) (*Map[K, V], error) {
	count, n := protowire.ConsumeVarint(data)
	if n < 0 {
		return nil, fmt.Errorf("decode entry count: %w", protowire.ParseError(n))
	}
	data = data[n:]
	m := EmptyOrdering[K, V](ord)
	for i := uint64(0); i < count; i++ {
		kb, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, fmt.Errorf("decode key %d: %w", i, protowire.ParseError(n))
		}
		data = data[n:]
		vb, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, fmt.Errorf("decode value %d: %w", i, protowire.ParseError(n))
		}
		data = data[n:]
		k, err := c.UnmarshalKey(kb)
		if err != nil {
			return nil, fmt.Errorf("unmarshal key %d: %w", i, err)
		}
		v, err := c.UnmarshalVal(vb)
		if err != nil {
			return nil, fmt.Errorf("unmarshal value %d: %w", i, err)
		}
		m = m.Assoc(k, v)
	}
	if len(data) != 0 {
		return nil, fmt.Errorf("decode: %d trailing bytes after %d entries", len(data), count)
	}
	return m, nil
}
