// Package treemap provides a persistent sorted map backed by a
// red-black tree. Maps are immutable: Assoc and Without return a new
// map that shares all unmodified subtrees with the receiver, so old
// versions stay valid and can be read concurrently without locking.
//
// Key order, key equality, and key hashing all come from the
// order.Ordering supplied at construction; it is fixed for the life of
// the map and every map derived from it.
package treemap

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/arborix/arbor/option"
	"github.com/arborix/arbor/order"
)

var (
	// ErrEmptyMap is the panic value of FirstKey and LastKey on an
	// empty map.
	ErrEmptyMap = errors.New("treemap: map is empty")
	// ErrInvalidRange is the panic value of SubMap when from sorts
	// after to.
	ErrInvalidRange = errors.New("treemap: range start after range end")
	// ErrUnmodifiable is the panic value of every mutator on a view
	// returned by Keys, Entries or Vals.
	ErrUnmodifiable = errors.New("treemap: view is unmodifiable")
)

// Entry is one key/value pair of a map.
type Entry[K, V any] struct {
	Key K
	Val V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.Key, e.Val)
}

// Map is a persistent sorted map. The zero value is not usable; start
// from Empty, Of, or one of the Ordering-taking variants.
type Map[K, V any] struct {
	ord  order.Ordering[K]
	tree *node[K, V]
	size int
}

// Empty returns an empty map ordered by the natural order of K.
func Empty[K order.Ordered, V any]() *Map[K, V] {
	return EmptyOrdering[K, V](order.Natural[K]())
}

// EmptyOrdering returns an empty map ordered by ord.
func EmptyOrdering[K, V any](ord order.Ordering[K]) *Map[K, V] {
	return &Map[K, V]{ord: ord}
}

// Of builds a map from entries, ordered by the natural order of K.
// Later entries win on duplicate keys.
func Of[K order.Ordered, V any](entries ...Entry[K, V]) *Map[K, V] {
	return OfOrdering[K, V](order.Natural[K](), entries...)
}

// OfOrdering builds a map from entries under ord.
func OfOrdering[K, V any](ord order.Ordering[K], entries ...Entry[K, V]) *Map[K, V] {
	m := EmptyOrdering[K, V](ord)
	for _, e := range entries {
		m = m.Assoc(e.Key, e.Val)
	}
	return m
}

// FromSeq builds a map under ord from a key/value sequence.
func FromSeq[K, V any](ord order.Ordering[K], seq iter.Seq2[K, V]) *Map[K, V] {
	m := EmptyOrdering[K, V](ord)
	for k, v := range seq {
		m = m.Assoc(k, v)
	}
	return m
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.size }

// Ordering returns the ordering the map was built with.
func (m *Map[K, V]) Ordering() order.Ordering[K] { return m.ord }

// Assoc returns a map in which key maps to val. If key is already
// bound to the identical value, the receiver itself is returned. If
// key is bound to a different value only the path to its node is
// rewritten; the tree shape and node count are unchanged.
func (m *Map[K, V]) Assoc(key K, val V) *Map[K, V] {
	var found *node[K, V]
	t := m.add(m.tree, key, val, &found)
	if t == nil { // key present
		if identical(found.val, val) {
			return m
		}
		return &Map[K, V]{ord: m.ord, tree: m.replaceVal(m.tree, key, val), size: m.size}
	}
	return &Map[K, V]{ord: m.ord, tree: t.blacken(), size: m.size + 1}
}

// Without returns a map with key removed. If key is absent the
// receiver itself is returned.
func (m *Map[K, V]) Without(key K) *Map[K, V] {
	var found *node[K, V]
	t := m.remove(m.tree, key, &found)
	if t == nil {
		if found == nil { // not present, no-op
			return m
		}
		return EmptyOrdering[K, V](m.ord)
	}
	return &Map[K, V]{ord: m.ord, tree: t.blacken(), size: m.size - 1}
}

func (m *Map[K, V]) lookup(key K) *node[K, V] {
	t := m.tree
	for t != nil {
		c := m.ord.Compare(key, t.key)
		switch {
		case c == 0:
			return t
		case c < 0:
			t = t.left
		default:
			t = t.right
		}
	}
	return nil
}

// Entry returns the entry stored under key, or None on a miss. A miss
// never panics; absence and "present with zero value" stay
// distinguishable.
func (m *Map[K, V]) Entry(key K) option.Option[Entry[K, V]] {
	if t := m.lookup(key); t != nil {
		return option.Some(Entry[K, V]{Key: t.key, Val: t.val})
	}
	return option.None[Entry[K, V]]()
}

// Get returns the value stored under key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if t := m.lookup(key); t != nil {
		return t.val, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool { return m.lookup(key) != nil }

func (m *Map[K, V]) leftmost() *node[K, V] {
	t := m.tree
	if t == nil {
		return nil
	}
	for t.left != nil {
		t = t.left
	}
	return t
}

func (m *Map[K, V]) rightmost() *node[K, V] {
	t := m.tree
	if t == nil {
		return nil
	}
	for t.right != nil {
		t = t.right
	}
	return t
}

// FirstKey returns the smallest key. It panics with ErrEmptyMap on an
// empty map.
func (m *Map[K, V]) FirstKey() K {
	t := m.leftmost()
	if t == nil {
		panic(ErrEmptyMap)
	}
	return t.key
}

// LastKey returns the largest key. It panics with ErrEmptyMap on an
// empty map.
func (m *Map[K, V]) LastKey() K {
	t := m.rightmost()
	if t == nil {
		panic(ErrEmptyMap)
	}
	return t.key
}

// Head returns the entry with the smallest key, or None on an empty
// map.
func (m *Map[K, V]) Head() option.Option[Entry[K, V]] {
	if t := m.leftmost(); t != nil {
		return option.Some(Entry[K, V]{Key: t.key, Val: t.val})
	}
	return option.None[Entry[K, V]]()
}

// Last returns the entry with the largest key, or None on an empty
// map.
func (m *Map[K, V]) Last() option.Option[Entry[K, V]] {
	if t := m.rightmost(); t != nil {
		return option.Some(Entry[K, V]{Key: t.key, Val: t.val})
	}
	return option.None[Entry[K, V]]()
}

// SubMap returns the entries with keys in [from, to). It panics with
// ErrInvalidRange when from sorts after to. The result is rebuilt by a
// forward scan and repeated Assoc, so it costs O(n) even for a small
// range.
func (m *Map[K, V]) SubMap(from, to K) *Map[K, V] {
	cmp := m.ord.Compare(from, to)
	if cmp > 0 {
		panic(ErrInvalidRange)
	}
	if m.size == 0 {
		return m
	}
	if cmp == 0 {
		return EmptyOrdering[K, V](m.ord)
	}
	first, last := m.FirstKey(), m.LastKey()
	if m.ord.Lte(to, first) || m.ord.Gt(from, last) {
		return EmptyOrdering[K, V](m.ord)
	}
	if m.ord.Lte(from, first) && m.ord.Gt(to, last) {
		return m
	}
	if m.ord.Compare(from, last) == 0 {
		v, _ := m.Get(last)
		return EmptyOrdering[K, V](m.ord).Assoc(last, v)
	}
	out := EmptyOrdering[K, V](m.ord)
	for k, v := range m.All() {
		if m.ord.Gte(k, to) {
			break
		}
		if m.ord.Gte(k, from) {
			out = out.Assoc(k, v)
		}
	}
	return out
}

// HeadMap returns the entries with keys strictly below to.
func (m *Map[K, V]) HeadMap(to K) *Map[K, V] {
	if m.size == 0 {
		return m
	}
	if m.ord.Lte(to, m.FirstKey()) {
		return EmptyOrdering[K, V](m.ord)
	}
	return m.SubMap(m.FirstKey(), to)
}

// TailMap returns the entries with keys at or above from.
func (m *Map[K, V]) TailMap(from K) *Map[K, V] {
	if m.size == 0 {
		return m
	}
	if m.ord.Lte(from, m.FirstKey()) {
		return m
	}
	last := m.LastKey()
	if m.ord.Gt(from, last) {
		return EmptyOrdering[K, V](m.ord)
	}
	if m.ord.Compare(from, last) == 0 {
		v, _ := m.Get(last)
		return EmptyOrdering[K, V](m.ord).Assoc(last, v)
	}
	out := EmptyOrdering[K, V](m.ord)
	for k, v := range m.All() {
		if m.ord.Gte(k, from) {
			out = out.Assoc(k, v)
		}
	}
	return out
}

// All iterates entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iterator()
		for e, ok := it.Next(); ok; e, ok = it.Next() {
			if !yield(e.Key, e.Val) {
				return
			}
		}
	}
}

// Backward iterates entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.ReverseIterator()
		for e, ok := it.Next(); ok; e, ok = it.Next() {
			if !yield(e.Key, e.Val) {
				return
			}
		}
	}
}

// Equal reports whether o has the same ordering-equal keys bound to
// deeply equal values, in the same order.
func (m *Map[K, V]) Equal(o *Map[K, V]) bool {
	if m.size != o.size {
		return false
	}
	oi := o.Iterator()
	for k, v := range m.All() {
		oe, ok := oi.Next()
		if !ok || m.ord.Compare(k, oe.Key) != 0 || !reflect.DeepEqual(v, oe.Val) {
			return false
		}
	}
	return true
}

func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v=%v", k, v)
	}
	b.WriteByte('}')
	return b.String()
}

// identical reports whether stored and replacement are the same value.
// Uncomparable values are never identical rather than a panic.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
