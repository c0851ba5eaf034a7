package treemap

import (
	"iter"
	"reflect"
)

// KeySet is a read-only set view over the keys of one map version.
// The write methods exist so the view can stand in where a general set
// is expected; they always panic with ErrUnmodifiable.
type KeySet[K, V any] struct {
	m *Map[K, V]
}

// Keys returns a set view of the map's keys, in ascending order.
func (m *Map[K, V]) Keys() KeySet[K, V] { return KeySet[K, V]{m: m} }

func (s KeySet[K, V]) Len() int            { return s.m.size }
func (s KeySet[K, V]) Contains(key K) bool { return s.m.Contains(key) }
func (s KeySet[K, V]) Add(K)               { panic(ErrUnmodifiable) }
func (s KeySet[K, V]) Remove(K)            { panic(ErrUnmodifiable) }

// All iterates the keys in ascending order.
func (s KeySet[K, V]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Equal reports whether o holds ordering-equal keys in the same order.
func (s KeySet[K, V]) Equal(o KeySet[K, V]) bool {
	if s.m.size != o.m.size {
		return false
	}
	oi := o.m.Iterator()
	for k := range s.All() {
		oe, _ := oi.Next()
		if s.m.ord.Compare(k, oe.Key) != 0 {
			return false
		}
	}
	return true
}

// EntrySet is a read-only set view over the entries of one map
// version.
type EntrySet[K, V any] struct {
	m *Map[K, V]
}

// Entries returns a set view of the map's entries, in ascending key
// order.
func (m *Map[K, V]) Entries() EntrySet[K, V] { return EntrySet[K, V]{m: m} }

func (s EntrySet[K, V]) Len() int           { return s.m.size }
func (s EntrySet[K, V]) Add(Entry[K, V])    { panic(ErrUnmodifiable) }
func (s EntrySet[K, V]) Remove(Entry[K, V]) { panic(ErrUnmodifiable) }

// Contains reports whether the map binds e.Key to a value deeply equal
// to e.Val.
func (s EntrySet[K, V]) Contains(e Entry[K, V]) bool {
	v, ok := s.m.Get(e.Key)
	return ok && reflect.DeepEqual(v, e.Val)
}

// All iterates the entries in ascending key order.
func (s EntrySet[K, V]) All() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		it := s.m.Iterator()
		for e, ok := it.Next(); ok; e, ok = it.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

// Values is a read-only collection view over the values of one map
// version, in ascending key order.
type Values[K, V any] struct {
	m *Map[K, V]
}

// Vals returns a collection view of the map's values.
func (m *Map[K, V]) Vals() Values[K, V] { return Values[K, V]{m: m} }

func (s Values[K, V]) Len() int { return s.m.size }
func (s Values[K, V]) Add(V)    { panic(ErrUnmodifiable) }
func (s Values[K, V]) Remove(V) { panic(ErrUnmodifiable) }

// All iterates the values in ascending key order.
func (s Values[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range s.m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
