package treemap

// Iterator is a one-shot cursor over one immutable map version. It is
// not safe for concurrent use, but the snapshot it walks can never
// change underneath it.
type Iterator[K, V any] struct {
	stack []*node[K, V]
	asc   bool
}

// Iterator returns a cursor over the entries in ascending key order.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{asc: true}
	it.push(m.tree)
	return it
}

// ReverseIterator returns a cursor over the entries in descending key
// order.
func (m *Map[K, V]) ReverseIterator() *Iterator[K, V] {
	it := &Iterator[K, V]{asc: false}
	it.push(m.tree)
	return it
}

// push descends along the iteration edge of t, stacking every node on
// the way so the deepest one is the next to yield.
func (it *Iterator[K, V]) push(t *node[K, V]) {
	for t != nil {
		it.stack = append(it.stack, t)
		if it.asc {
			t = t.left
		} else {
			t = t.right
		}
	}
}

// Next returns the next entry, or ok=false when the cursor is
// exhausted.
func (it *Iterator[K, V]) Next() (Entry[K, V], bool) {
	if len(it.stack) == 0 {
		return Entry[K, V]{}, false
	}
	t := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if it.asc {
		it.push(t.right)
	} else {
		it.push(t.left)
	}
	return Entry[K, V]{Key: t.key, Val: t.val}, true
}
