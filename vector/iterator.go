package vector

// ListIterator is a bidirectional cursor over one vector version. It
// caches the 32-slot array backing the current position and refreshes
// it only when traversal crosses a slot boundary, so stepping within a
// leaf costs no trie walk in either direction.
type ListIterator[T any] struct {
	v     *Vector[T]
	i     int // index the next call to Next returns
	base  int // start index of the cached slots, -1 when empty
	slots []T
}

// ListIterator returns a cursor positioned before the first element.
func (v *Vector[T]) ListIterator() *ListIterator[T] {
	return v.ListIteratorAt(0)
}

// ListIteratorAt returns a cursor positioned so that Next returns the
// element at index i. It panics with ErrOutOfBounds outside [0, Len].
func (v *Vector[T]) ListIteratorAt(i int) *ListIterator[T] {
	if i < 0 || i > v.size {
		panic(ErrOutOfBounds)
	}
	return &ListIterator[T]{v: v, i: i, base: -1}
}

func (it *ListIterator[T]) load(i int) {
	if base := i &^ chunkMask; base != it.base {
		it.slots = it.v.slotsFor(i)
		it.base = base
	}
}

// Index returns the index the next call to Next would return.
func (it *ListIterator[T]) Index() int { return it.i }

// HasNext reports whether a forward step remains.
func (it *ListIterator[T]) HasNext() bool { return it.i < it.v.size }

// HasPrev reports whether a backward step remains.
func (it *ListIterator[T]) HasPrev() bool { return it.i > 0 }

// Next returns the element at the cursor and advances, or ok=false at
// the end.
func (it *ListIterator[T]) Next() (T, bool) {
	if it.i >= it.v.size {
		var zero T
		return zero, false
	}
	it.load(it.i)
	val := it.slots[it.i-it.base]
	it.i++
	return val, true
}

// Prev steps backward and returns the element now under the cursor, or
// ok=false at the start.
func (it *ListIterator[T]) Prev() (T, bool) {
	if it.i <= 0 {
		var zero T
		return zero, false
	}
	it.i--
	it.load(it.i)
	return it.slots[it.i-it.base], true
}
