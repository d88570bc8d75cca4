package cowslice

// guardState tracks whether an Item issued by the current traversal is still
// alive. At most one Item may be alive at a time: the relocation performed on
// a copy-on-write transition rewrites shared traversal state and is not
// re-entrant across two live items.
type guardState uint8

const (
	guardDead guardState = iota
	guardAlive
)

// Messages for contract violations. These are caller defects, not runtime
// conditions, so they panic rather than return errors.
const (
	panicTraversalGuard = "cowslice: traversal started while an item from a previous traversal is still alive; release it first"
	panicItemAlive      = "cowslice: iterator advanced while the previous item is still alive; release items before advancing"
	panicItemReleased   = "cowslice: item used after release"
)

// MutIter is a mutable iterator over a Slice. Each step yields an Item that
// must be released before the iterator is advanced again. Writing through an
// Item while the contents are still borrowed triggers the copy-on-write
// transition; reading never does.
type MutIter[T any] struct {
	s *Slice[T]
}

// IterMut starts a mutable traversal over the current contents. It panics if
// an Item from a previous traversal has not been released. Starting a new
// traversal resets the position of any earlier iterator on the same Slice.
func (s *Slice[T]) IterMut() *MutIter[T] {
	if s.guard != guardDead {
		panic(panicTraversalGuard)
	}
	s.pos = 0
	s.end = len(s.content.elems)
	return &MutIter[T]{s: s}
}

// Next yields an Item for the next element, or (nil, false) when the
// traversal is exhausted. It panics if the previously yielded Item has not
// been released.
func (m *MutIter[T]) Next() (*Item[T], bool) {
	s := m.s
	if s.guard != guardDead {
		panic(panicItemAlive)
	}
	if s.pos == s.end {
		return nil, false
	}
	item := &Item[T]{
		s:       s,
		elems:   s.content.elems,
		distEnd: s.end - s.pos,
		owned:   s.content.owned,
	}
	s.guard = guardAlive
	s.pos++
	return item, true
}

// Nth skips n elements and yields an Item for the one after them, advancing
// past it. Nth(0) is equivalent to Next. If fewer than n+1 elements remain it
// returns (nil, false) without advancing; that is a normal outcome, not an
// error. The guard and copy-on-write behavior are identical to repeated Next
// calls.
func (m *MutIter[T]) Nth(n int) (*Item[T], bool) {
	s := m.s
	if s.guard != guardDead {
		panic(panicItemAlive)
	}
	if n < 0 || n >= s.end-s.pos {
		return nil, false
	}
	s.pos += n
	return m.Next()
}

// Remaining returns the number of elements not yet produced.
func (m *MutIter[T]) Remaining() int {
	return m.s.end - m.s.pos
}

// ForEach produces and releases one Item per remaining element, calling f
// with each before advancing. The per-step guard check is the same as Next's,
// so f must not retain an item past its own return. For traversals that do
// not need an escaping iterator, Slice.VisitEach is cheaper.
func (m *MutIter[T]) ForEach(f func(*Item[T])) {
	s := m.s
	for {
		if s.guard != guardDead {
			panic(panicItemAlive)
		}
		if s.pos == s.end {
			return
		}
		item := &Item[T]{
			s:       s,
			elems:   s.content.elems,
			distEnd: s.end - s.pos,
			owned:   s.content.owned,
		}
		s.guard = guardAlive
		s.pos++
		f(item)
		item.Release()
	}
}

// Item is a capability to read and write exactly one element being visited
// by a MutIter. It owns no data. Its position is encoded as the distance
// from the traversal's end: a clone preserves length, so the end stays
// anchored while the backing storage changes, which is what makes relocation
// after a copy-on-write transition possible.
type Item[T any] struct {
	s       *Slice[T]
	elems   []T
	distEnd int
	owned   bool

	released bool
}

// index returns the element's index in the backing slice currently held by
// the item. len(elems) equals the traversal end.
func (it *Item[T]) index() int {
	return len(it.elems) - it.distEnd
}

// Value reads the element. Reading never triggers the copy-on-write
// transition. It panics if the item has been released.
func (it *Item[T]) Value() T {
	if it.released {
		panic(panicItemReleased)
	}
	return it.elems[it.index()]
}

// Mut returns a pointer to the element in owned storage, performing the
// copy-on-write transition first if the contents are still borrowed. Call it
// only when a write is intended: obtaining the pointer already forces the
// clone. It panics if the item has been released.
func (it *Item[T]) Mut() *T {
	if it.released {
		panic(panicItemReleased)
	}
	if !it.owned {
		s := it.s
		s.content.ensureOwned()

		// Relocate onto the new storage. Length is preserved by the clone,
		// so the end anchor is stable: recompute the element index from the
		// recorded distance, then resume the shared traversal one element
		// past it.
		it.elems = s.content.elems
		idx := len(it.elems) - it.distEnd
		s.end = len(it.elems)
		s.pos = idx + 1
		it.owned = true
	}
	return &it.elems[it.index()]
}

// Set writes v to the element, performing the copy-on-write transition first
// if the contents are still borrowed. Exactly one transition occurs per
// container no matter how many elements are subsequently written.
func (it *Item[T]) Set(v T) {
	*it.Mut() = v
}

// Release ends the item's lifetime and allows the traversal to advance.
// Release is idempotent. It is the only operation that clears the guard: an
// item that is silently dropped without Release stalls all future traversals
// on its Slice.
func (it *Item[T]) Release() {
	if it.released {
		return
	}
	it.released = true
	it.s.guard = guardDead
}
