package vector

import "sync/atomic"

// Transient is a mutate-in-place builder over the vector
// representation, for batching many writes before sealing the result
// back into a Vector. A trie node is copied at most once per session:
// the first touch under this session's edit token clones and stamps
// it, later touches mutate it directly.
//
// A Transient belongs to one goroutine at a time; it does no locking
// beyond the sealed check, so handing a live session between
// goroutines is the caller's problem to synchronize.
type Transient[T any] struct {
	size  int
	shift uint
	root  *node[T]
	tail  []T
	edit  *int32
}

// Transient opens an edit session seeded with the vector's contents.
// The vector itself is unaffected by anything done in the session.
func (v *Vector[T]) Transient() *Transient[T] {
	edit := new(int32)
	*edit = 1
	tail := make([]T, nodeWidth)
	copy(tail, v.tail)
	return &Transient[T]{
		size:  v.size,
		shift: v.shift,
		root:  v.root.cloneBranch(edit),
		tail:  tail,
		edit:  edit,
	}
}

func (tr *Transient[T]) ensureEditable() {
	if atomic.LoadInt32(tr.edit) == 0 {
		panic(ErrSealed)
	}
}

// editable returns n itself when it already belongs to this session,
// otherwise a clone stamped with the session token.
func (tr *Transient[T]) editable(n *node[T]) *node[T] {
	if n.edit == tr.edit {
		return n
	}
	if n.leaf != nil {
		c := make([]T, nodeWidth)
		copy(c, n.leaf)
		return newLeaf(tr.edit, c)
	}
	return n.cloneBranch(tr.edit)
}

// Len returns the current number of elements.
func (tr *Transient[T]) Len() int { return tr.size }

func (tr *Transient[T]) tailoff() int {
	if tr.size < nodeWidth {
		return 0
	}
	return ((tr.size - 1) >> chunkBits) << chunkBits
}

// Get returns the element at index i. It panics with ErrSealed after
// ToImmutable and with ErrOutOfBounds outside [0, Len).
func (tr *Transient[T]) Get(i int) T {
	tr.ensureEditable()
	if i < 0 || i >= tr.size {
		panic(ErrOutOfBounds)
	}
	if i >= tr.tailoff() {
		return tr.tail[i&chunkMask]
	}
	n := tr.root
	for level := tr.shift; level > 0; level -= chunkBits {
		n = n.children[(i>>level)&chunkMask]
	}
	return n.leaf[i&chunkMask]
}

// Append adds val at the end, in place.
func (tr *Transient[T]) Append(val T) *Transient[T] {
	tr.ensureEditable()
	i := tr.size
	if i-tr.tailoff() < nodeWidth {
		tr.tail[i&chunkMask] = val
		tr.size++
		return tr
	}
	tailNode := newLeaf(tr.edit, tr.tail)
	tr.tail = make([]T, nodeWidth)
	tr.tail[0] = val
	if (tr.size >> chunkBits) > (1 << tr.shift) {
		root := newBranch[T](tr.edit)
		root.children[0] = tr.root
		root.children[1] = newPath(tr.shift, tailNode)
		tr.root = root
		tr.shift += chunkBits
	} else {
		tr.root = tr.pushTail(tr.shift, tr.root, tailNode)
	}
	tr.size++
	return tr
}

func (tr *Transient[T]) pushTail(level uint, parent, tailNode *node[T]) *node[T] {
	ret := tr.editable(parent)
	sub := ((tr.size - 1) >> level) & chunkMask
	if level == chunkBits {
		ret.children[sub] = tailNode
		return ret
	}
	if child := ret.children[sub]; child != nil {
		ret.children[sub] = tr.pushTail(level-chunkBits, child, tailNode)
	} else {
		ret.children[sub] = newPath(level-chunkBits, tailNode)
	}
	return ret
}

// Replace sets index i to val, in place. Replace at index Len behaves
// as Append.
func (tr *Transient[T]) Replace(i int, val T) *Transient[T] {
	tr.ensureEditable()
	if i == tr.size {
		return tr.Append(val)
	}
	if i < 0 || i > tr.size {
		panic(ErrOutOfBounds)
	}
	if i >= tr.tailoff() {
		tr.tail[i&chunkMask] = val
		return tr
	}
	tr.root = tr.doAssoc(tr.shift, tr.root, i, val)
	return tr
}

func (tr *Transient[T]) doAssoc(level uint, n *node[T], i int, val T) *node[T] {
	c := tr.editable(n)
	if level == 0 {
		c.leaf[i&chunkMask] = val
		return c
	}
	sub := (i >> level) & chunkMask
	c.children[sub] = tr.doAssoc(level-chunkBits, c.children[sub], i, val)
	return c
}

// ToImmutable seals the session and returns the built vector. The
// session token is cleared, so any later use of the Transient panics
// with ErrSealed; the returned Vector is a normal persistent value.
func (tr *Transient[T]) ToImmutable() *Vector[T] {
	tr.ensureEditable()
	atomic.StoreInt32(tr.edit, 0)
	tail := make([]T, tr.size-tr.tailoff())
	copy(tail, tr.tail)
	return &Vector[T]{size: tr.size, shift: tr.shift, root: tr.root, tail: tail}
}
