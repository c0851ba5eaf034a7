// Package order bundles a three-way comparator with a compatible hash
// and equality, so that the same notion of "same key" is used for
// sorting, lookup, and hashing. An Ordering is supplied once, at map
// construction, and is fixed for the lifetime of that map and every
// version derived from it.
package order

import (
	"cmp"
	"fmt"
	"hash/crc64"
	"iter"
	"reflect"
)

var crcTable = crc64.MakeTable(crc64.ECMA)

// Ordering is a comparison context over T. Compare must be a total
// order; Hash must be consistent with it (Compare(a,b)==0 implies equal
// hashes). The derived Eq, Lte, and Gte treat two nil operands as
// equal and exactly one nil operand as unequal, without delegating to
// the comparator, so comparators need not accept nil unless callers
// pass nil to Compare, Lt, or Gt directly.
type Ordering[T any] struct {
	compare func(a, b T) int
	hash    func(T) uint64
}

// Ordered constrains the key types Natural accepts.
type Ordered = cmp.Ordered

// Natural returns an Ordering over any naturally ordered type.
func Natural[T cmp.Ordered]() Ordering[T] {
	return Ordering[T]{
		compare: cmp.Compare[T],
		hash:    hashAny[T],
	}
}

// By returns an Ordering using the given comparator and a default hash.
func By[T any](compare func(a, b T) int) Ordering[T] {
	return Ordering[T]{compare: compare, hash: hashAny[T]}
}

// ByWithHash returns an Ordering using the given comparator and hash.
func ByWithHash[T any](compare func(a, b T) int, hash func(T) uint64) Ordering[T] {
	return Ordering[T]{compare: compare, hash: hash}
}

// Reversed returns an Ordering with the comparison inverted. The hash
// is unchanged.
func (o Ordering[T]) Reversed() Ordering[T] {
	return Ordering[T]{
		compare: func(a, b T) int { return o.compare(b, a) },
		hash:    o.hash,
	}
}

// Compare returns a negative number if a sorts before b, a positive
// number if after, and 0 if they are the same under this Ordering.
func (o Ordering[T]) Compare(a, b T) int { return o.compare(a, b) }

// Hash returns the hash of v. Nil values hash to 0.
func (o Ordering[T]) Hash(v T) uint64 {
	if isNil(v) {
		return 0
	}
	return o.hash(v)
}

// Eq reports whether a and b are the same under this Ordering. Two nil
// operands are equal; exactly one nil operand is unequal.
func (o Ordering[T]) Eq(a, b T) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	return o.compare(a, b) == 0
}

// Lt reports whether a sorts strictly before b.
func (o Ordering[T]) Lt(a, b T) bool { return o.compare(a, b) < 0 }

// Lte reports whether a sorts before b or equals it. Nil operands are
// handled as in Eq.
func (o Ordering[T]) Lte(a, b T) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	return o.compare(a, b) <= 0
}

// Gt reports whether a sorts strictly after b.
func (o Ordering[T]) Gt(a, b T) bool { return o.compare(a, b) > 0 }

// Gte reports whether a sorts after b or equals it. Nil operands are
// handled as in Eq.
func (o Ordering[T]) Gte(a, b T) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	return o.compare(a, b) >= 0
}

// Min returns the smallest item in the sequence, skipping nil values.
// The second result is false if the sequence held no non-nil items.
// Ties go to the earliest item.
func (o Ordering[T]) Min(items iter.Seq[T]) (T, bool) {
	var ret T
	found := false
	for next := range items {
		if isNil(next) {
			continue
		}
		if !found || o.Lt(next, ret) {
			ret = next
			found = true
		}
	}
	return ret, found
}

// Max returns the largest item in the sequence, skipping nil values.
// The second result is false if the sequence held no non-nil items.
// Ties go to the earliest item.
func (o Ordering[T]) Max(items iter.Seq[T]) (T, bool) {
	var ret T
	found := false
	for next := range items {
		if isNil(next) {
			continue
		}
		if !found || o.Gt(next, ret) {
			ret = next
			found = true
		}
	}
	return ret, found
}

// hashAny hashes the printed form of v. Ordered scalar and string keys
// print deterministically, which is all the default hash needs to be.
func hashAny[T any](v T) uint64 {
	return crc64.Checksum(fmt.Append(nil, v), crcTable)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
