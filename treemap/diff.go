package treemap

import "reflect"

// DiffIter invokes entryCb for every difference between m and old: an
// entry added by m, removed from old, or present in both with changed
// values. Both added and removed are true for a changed value. The
// callback returns false to stop early. Both maps must share an
// ordering; the walk is a single merge pass over the two sorted entry
// streams, so it costs O(n+m) however the versions diverged.
func (m *Map[K, V]) DiffIter(old *Map[K, V], entryCb func(added, removed bool, key K, addedValue, removedValue V) bool) {
	var zero V
	mi, oi := m.Iterator(), old.Iterator()
	me, mok := mi.Next()
	oe, ook := oi.Next()
	for mok || ook {
		var c int
		switch {
		case !mok:
			c = 1
		case !ook:
			c = -1
		default:
			c = m.ord.Compare(me.Key, oe.Key)
		}
		switch {
		case c < 0: // only in m
			if !entryCb(true, false, me.Key, me.Val, zero) {
				return
			}
			me, mok = mi.Next()
		case c > 0: // only in old
			if !entryCb(false, true, oe.Key, zero, oe.Val) {
				return
			}
			oe, ook = oi.Next()
		default:
			if !reflect.DeepEqual(me.Val, oe.Val) {
				if !entryCb(true, true, me.Key, me.Val, oe.Val) {
					return
				}
			}
			me, mok = mi.Next()
			oe, ook = oi.Next()
		}
	}
}

// Diff collects the differences from DiffIter: entries added or
// changed in m, and keys removed from old.
func (m *Map[K, V]) Diff(old *Map[K, V]) (added []Entry[K, V], removed []K) {
	m.DiffIter(old, func(add, rem bool, key K, addedValue, removedValue V) bool {
		if add {
			added = append(added, Entry[K, V]{Key: key, Val: addedValue})
		} else if rem {
			removed = append(removed, key)
		}
		return true
	})
	return added, removed
}
