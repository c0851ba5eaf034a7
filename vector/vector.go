// Package vector provides a persistent random-access sequence backed
// by a 32-way branching trie with a tail buffer, plus a transient
// builder for batched construction. Vectors are immutable: Append,
// Replace, and Pop return a new vector sharing every untouched trie
// node with the receiver.
//
// Indices below tailoff resolve through the trie in O(log32 n); the
// trailing up-to-32 elements live in the tail and resolve in O(1),
// which makes Append O(1) amortized.
package vector

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"strings"
)

const (
	chunkBits = 5
	nodeWidth = 1 << chunkBits
	chunkMask = nodeWidth - 1
)

var (
	// ErrOutOfBounds is the panic value of Get and Replace for an
	// index outside the valid range.
	ErrOutOfBounds = errors.New("vector: index out of bounds")
	// ErrEmptyVector is the panic value of Pop on an empty vector.
	ErrEmptyVector = errors.New("vector: vector is empty")
	// ErrSealed is the panic value of any Transient mutator called
	// after ToImmutable.
	ErrSealed = errors.New("vector: transient used after sealed")
)

// node is one trie node. Branch nodes carry children, leaf nodes carry
// element slots; a node is never both. edit ties the node to the
// transient session that may mutate it in place; nodes reachable from
// a persistent vector carry the shared noEdit token.
type node[T any] struct {
	edit     *int32
	children []*node[T]
	leaf     []T
}

var noEdit = new(int32)

func newBranch[T any](edit *int32) *node[T] {
	return &node[T]{edit: edit, children: make([]*node[T], nodeWidth)}
}

func newLeaf[T any](edit *int32, slots []T) *node[T] {
	return &node[T]{edit: edit, leaf: slots}
}

func (n *node[T]) cloneBranch(edit *int32) *node[T] {
	c := newBranch[T](edit)
	copy(c.children, n.children)
	return c
}

func (n *node[T]) cloneLeaf(edit *int32) *node[T] {
	slots := make([]T, len(n.leaf), nodeWidth)
	copy(slots, n.leaf)
	return newLeaf(edit, slots)
}

// Vector is a persistent sequence. The zero value is not usable; start
// from Empty, New, or FromSeq.
type Vector[T any] struct {
	size  int
	shift uint
	root  *node[T]
	tail  []T
}

// Empty returns the empty vector.
func Empty[T any]() *Vector[T] {
	return &Vector[T]{shift: chunkBits, root: newBranch[T](noEdit)}
}

// New builds a vector of items.
func New[T any](items ...T) *Vector[T] {
	tr := Empty[T]().Transient()
	for _, v := range items {
		tr.Append(v)
	}
	return tr.ToImmutable()
}

// FromSeq builds a vector from a sequence.
func FromSeq[T any](seq iter.Seq[T]) *Vector[T] {
	tr := Empty[T]().Transient()
	for v := range seq {
		tr.Append(v)
	}
	return tr.ToImmutable()
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.size }

// tailoff is the number of elements resolved through the trie; indices
// at or above it live in the tail.
func (v *Vector[T]) tailoff() int {
	if v.size < nodeWidth {
		return 0
	}
	return ((v.size - 1) >> chunkBits) << chunkBits
}

// slotsFor returns the 32-slot array holding index i.
func (v *Vector[T]) slotsFor(i int) []T {
	if i >= v.tailoff() {
		return v.tail
	}
	n := v.root
	for level := v.shift; level > 0; level -= chunkBits {
		n = n.children[(i>>level)&chunkMask]
	}
	return n.leaf
}

// Get returns the element at index i. It panics with ErrOutOfBounds
// outside [0, Len).
func (v *Vector[T]) Get(i int) T {
	if i < 0 || i >= v.size {
		panic(ErrOutOfBounds)
	}
	return v.slotsFor(i)[i&chunkMask]
}

// Append returns a vector with val added at the end.
func (v *Vector[T]) Append(val T) *Vector[T] {
	if v.size-v.tailoff() < nodeWidth {
		tail := make([]T, len(v.tail)+1)
		copy(tail, v.tail)
		tail[len(v.tail)] = val
		return &Vector[T]{size: v.size + 1, shift: v.shift, root: v.root, tail: tail}
	}
	// Tail is full: fold it into the trie and start a fresh one.
	tailNode := newLeaf(noEdit, v.tail)
	shift := v.shift
	var root *node[T]
	if (v.size >> chunkBits) > (1 << v.shift) {
		root = newBranch[T](noEdit)
		root.children[0] = v.root
		root.children[1] = newPath(v.shift, tailNode)
		shift += chunkBits
	} else {
		root = v.pushTail(v.shift, v.root, tailNode)
	}
	return &Vector[T]{size: v.size + 1, shift: shift, root: root, tail: []T{val}}
}

// newPath wraps n in branch nodes until it sits at the given level.
func newPath[T any](level uint, n *node[T]) *node[T] {
	if level == 0 {
		return n
	}
	b := newBranch[T](n.edit)
	b.children[0] = newPath(level-chunkBits, n)
	return b
}

func (v *Vector[T]) pushTail(level uint, parent, tailNode *node[T]) *node[T] {
	sub := ((v.size - 1) >> level) & chunkMask
	ret := parent.cloneBranch(noEdit)
	if level == chunkBits {
		ret.children[sub] = tailNode
		return ret
	}
	if child := parent.children[sub]; child != nil {
		ret.children[sub] = v.pushTail(level-chunkBits, child, tailNode)
	} else {
		ret.children[sub] = newPath(level-chunkBits, tailNode)
	}
	return ret
}

// Replace returns a vector with index i set to val, rewriting only the
// path from the root to the slot holding i. Replace at index Len
// behaves as Append. Any other index outside [0, Len] panics with
// ErrOutOfBounds.
func (v *Vector[T]) Replace(i int, val T) *Vector[T] {
	if i == v.size {
		return v.Append(val)
	}
	if i < 0 || i > v.size {
		panic(ErrOutOfBounds)
	}
	if i >= v.tailoff() {
		tail := make([]T, len(v.tail))
		copy(tail, v.tail)
		tail[i&chunkMask] = val
		return &Vector[T]{size: v.size, shift: v.shift, root: v.root, tail: tail}
	}
	return &Vector[T]{size: v.size, shift: v.shift, root: doAssoc(v.shift, v.root, i, val), tail: v.tail}
}

func doAssoc[T any](level uint, n *node[T], i int, val T) *node[T] {
	if level == 0 {
		c := n.cloneLeaf(noEdit)
		c.leaf[i&chunkMask] = val
		return c
	}
	c := n.cloneBranch(noEdit)
	sub := (i >> level) & chunkMask
	c.children[sub] = doAssoc(level-chunkBits, n.children[sub], i, val)
	return c
}

// Pop returns a vector with the last element removed. It panics with
// ErrEmptyVector on an empty vector.
func (v *Vector[T]) Pop() *Vector[T] {
	switch {
	case v.size == 0:
		panic(ErrEmptyVector)
	case v.size == 1:
		return Empty[T]()
	case v.size-v.tailoff() > 1:
		tail := make([]T, len(v.tail)-1)
		copy(tail, v.tail[:len(v.tail)-1])
		return &Vector[T]{size: v.size - 1, shift: v.shift, root: v.root, tail: tail}
	}
	// Tail goes empty: the last full leaf becomes the new tail.
	tail := v.slotsFor(v.size - 2)
	root := v.popTail(v.shift, v.root)
	shift := v.shift
	if root == nil {
		root = newBranch[T](noEdit)
	}
	if shift > chunkBits && root.children[1] == nil {
		root = root.children[0]
		shift -= chunkBits
	}
	return &Vector[T]{size: v.size - 1, shift: shift, root: root, tail: tail}
}

func (v *Vector[T]) popTail(level uint, n *node[T]) *node[T] {
	sub := ((v.size - 2) >> level) & chunkMask
	if level > chunkBits {
		child := v.popTail(level-chunkBits, n.children[sub])
		if child == nil && sub == 0 {
			return nil
		}
		ret := n.cloneBranch(noEdit)
		ret.children[sub] = child
		return ret
	}
	if sub == 0 {
		return nil
	}
	ret := n.cloneBranch(noEdit)
	ret.children[sub] = nil
	return ret
}

// Concat returns a vector with every element of seq appended.
func (v *Vector[T]) Concat(seq iter.Seq[T]) *Vector[T] {
	tr := v.Transient()
	for val := range seq {
		tr.Append(val)
	}
	return tr.ToImmutable()
}

// All iterates index/element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; {
			slots := v.slotsFor(i)
			for _, val := range slots {
				if !yield(i, val) {
					return
				}
				i++
			}
		}
	}
}

// Values iterates elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range v.All() {
			if !yield(val) {
				return
			}
		}
	}
}

// Equal reports whether o has deeply equal elements in the same order.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v.size != o.size {
		return false
	}
	for i, val := range v.All() {
		if !reflect.DeepEqual(val, o.Get(i)) {
			return false
		}
	}
	return true
}

func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, val := range v.All() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", val)
	}
	b.WriteByte(']')
	return b.String()
}
