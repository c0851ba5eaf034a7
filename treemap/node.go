package treemap

// node is a red-black tree node. Nodes are immutable once published:
// every write path re-creates the nodes along the root-to-key path and
// shares all other subtrees with the prior version.
//
// A nil *node is the empty tree and counts as black.
type node[K, V any] struct {
	key   K
	val   V
	red   bool
	left  *node[K, V]
	right *node[K, V]
}

const errInvariant = "treemap: invariant violation"

func red[K, V any](key K, val V, left, right *node[K, V]) *node[K, V] {
	return &node[K, V]{key: key, val: val, red: true, left: left, right: right}
}

func black[K, V any](key K, val V, left, right *node[K, V]) *node[K, V] {
	return &node[K, V]{key: key, val: val, left: left, right: right}
}

func (n *node[K, V]) isRed() bool { return n != nil && n.red }

// isBlack reports a non-empty black node; nil is the empty tree and is
// deliberately excluded, matching the case analysis of the rebalance
// functions below.
func (n *node[K, V]) isBlack() bool { return n != nil && !n.red }

func (n *node[K, V]) blacken() *node[K, V] {
	if n == nil || !n.red {
		return n
	}
	c := *n
	c.red = false
	return &c
}

// redden is only legal on a black node; the deletion fixups call it on
// nodes the invariants prove black.
func (n *node[K, V]) redden() *node[K, V] {
	if n == nil || n.red {
		panic(errInvariant)
	}
	c := *n
	c.red = true
	return &c
}

// add inserts key/val below t, reconstructing and rebalancing the path.
// It returns nil if the key was already present, leaving *found set to
// the holding node so the caller can take the no-op or replace path.
func (m *Map[K, V]) add(t *node[K, V], key K, val V, found **node[K, V]) *node[K, V] {
	if t == nil {
		return red(key, val, nil, nil)
	}
	c := m.ord.Compare(key, t.key)
	if c == 0 {
		*found = t
		return nil
	}
	var ins *node[K, V]
	if c < 0 {
		ins = m.add(t.left, key, val, found)
	} else {
		ins = m.add(t.right, key, val, found)
	}
	if ins == nil { // found below
		return nil
	}
	if c < 0 {
		return t.addLeft(ins)
	}
	return t.addRight(ins)
}

func (t *node[K, V]) addLeft(ins *node[K, V]) *node[K, V] {
	if t.red {
		return red(t.key, t.val, ins, t.right)
	}
	return leftBalance(t.key, t.val, ins, t.right)
}

func (t *node[K, V]) addRight(ins *node[K, V]) *node[K, V] {
	if t.red {
		return red(t.key, t.val, t.left, ins)
	}
	return rightBalance(t.key, t.val, t.left, ins)
}

// leftBalance repairs a black node whose left subtree ins may carry a
// red-red violation, rotating the outer- or inner-grandchild shape up
// into a red parent with two black children.
func leftBalance[K, V any](key K, val V, ins, right *node[K, V]) *node[K, V] {
	switch {
	case ins.isRed() && ins.left.isRed():
		return red(ins.key, ins.val, ins.left.blacken(), black(key, val, ins.right, right))
	case ins.isRed() && ins.right.isRed():
		return red(ins.right.key, ins.right.val,
			black(ins.key, ins.val, ins.left, ins.right.left),
			black(key, val, ins.right.right, right))
	default:
		return black(key, val, ins, right)
	}
}

func rightBalance[K, V any](key K, val V, left, ins *node[K, V]) *node[K, V] {
	switch {
	case ins.isRed() && ins.right.isRed():
		return red(ins.key, ins.val, black(key, val, left, ins.left), ins.right.blacken())
	case ins.isRed() && ins.left.isRed():
		return red(ins.left.key, ins.left.val,
			black(key, val, left, ins.left.left),
			black(ins.key, ins.val, ins.left.right, ins.right))
	default:
		return black(key, val, left, ins)
	}
}

// remove deletes key below t. It returns nil with *found unset when the
// key is absent, and otherwise the replacement subtree, which may be
// short one black node until the parent repairs it.
func (m *Map[K, V]) remove(t *node[K, V], key K, found **node[K, V]) *node[K, V] {
	if t == nil {
		return nil // not found indicator
	}
	c := m.ord.Compare(key, t.key)
	if c == 0 {
		*found = t
		return appendNodes(t.left, t.right)
	}
	var del *node[K, V]
	if c < 0 {
		del = m.remove(t.left, key, found)
	} else {
		del = m.remove(t.right, key, found)
	}
	if del == nil && *found == nil { // not found below
		return nil
	}
	if c < 0 {
		if t.left.isBlack() {
			return balanceLeftDel(t.key, t.val, del, t.right)
		}
		return red(t.key, t.val, del, t.right)
	}
	if t.right.isBlack() {
		return balanceRightDel(t.key, t.val, t.left, del)
	}
	return red(t.key, t.val, t.left, del)
}

// appendNodes joins two subtrees whose keys are already fully ordered
// around a removed node, producing a replacement with correct local
// coloring for each red/black pairing of the two roots.
func appendNodes[K, V any](left, right *node[K, V]) *node[K, V] {
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	case left.red:
		if right.red {
			app := appendNodes(left.right, right.left)
			if app.isRed() {
				return red(app.key, app.val,
					red(left.key, left.val, left.left, app.left),
					red(right.key, right.val, app.right, right.right))
			}
			return red(left.key, left.val, left.left,
				red(right.key, right.val, app, right.right))
		}
		return red(left.key, left.val, left.left, appendNodes(left.right, right))
	case right.red:
		return red(right.key, right.val, appendNodes(left, right.left), right.right)
	default: // black/black
		app := appendNodes(left.right, right.left)
		if app.isRed() {
			return red(app.key, app.val,
				black(left.key, left.val, left.left, app.left),
				black(right.key, right.val, app.right, right.right))
		}
		return balanceLeftDel(left.key, left.val, left.left,
			black(right.key, right.val, app, right.right))
	}
}

// balanceLeftDel repairs a node whose left subtree del came back from a
// deletion one black level short. Unlike insertion balancing it keys
// off the sibling's color. The final case cannot occur in a tree that
// satisfied the invariants before the deletion.
func balanceLeftDel[K, V any](key K, val V, del, right *node[K, V]) *node[K, V] {
	switch {
	case del.isRed():
		return red(key, val, del.blacken(), right)
	case right.isBlack():
		return rightBalance(key, val, del, right.redden())
	case right.isRed() && right.left.isBlack():
		return red(right.left.key, right.left.val,
			black(key, val, del, right.left.left),
			rightBalance(right.key, right.val, right.left.right, right.right.redden()))
	default:
		panic(errInvariant)
	}
}

func balanceRightDel[K, V any](key K, val V, left, del *node[K, V]) *node[K, V] {
	switch {
	case del.isRed():
		return red(key, val, left, del.blacken())
	case left.isBlack():
		return leftBalance(key, val, left.redden(), del)
	case left.isRed() && left.right.isBlack():
		return red(left.right.key, left.right.val,
			leftBalance(left.key, left.val, left.left.redden(), left.right.left),
			black(key, val, left.right.right, del))
	default:
		panic(errInvariant)
	}
}

// replaceVal rewrites only the path to key, which must be present. No
// rebalancing is needed: the node count and shape are unchanged.
func (m *Map[K, V]) replaceVal(t *node[K, V], key K, val V) *node[K, V] {
	c := m.ord.Compare(key, t.key)
	nv := t.val
	if c == 0 {
		nv = val
	}
	left := t.left
	if c < 0 {
		left = m.replaceVal(t.left, key, val)
	}
	right := t.right
	if c > 0 {
		right = m.replaceVal(t.right, key, val)
	}
	return &node[K, V]{key: t.key, val: nv, red: t.red, left: left, right: right}
}
