package cowslice

// Elem is the view of one element passed to a VisitEach callback. Mut and
// Set on a still-borrowed container perform the same copy-on-write
// relocation as Item, but against the visitor's local loop state only: no
// element handle escapes between callback invocations, so there is no guard
// bookkeeping per element.
type Elem[T any] interface {
	// Value reads the element. Reading never clones.
	Value() T
	// Mut returns a pointer to the element in owned storage, cloning the
	// borrowed contents first if necessary.
	Mut() *T
	// Set writes v to the element, cloning the borrowed contents first if
	// necessary.
	Set(v T)
}

// VisitEach calls f once per element, in order. It has the same mutation
// semantics as IterMut().ForEach with lower per-element overhead. It panics
// if an Item from a previous traversal has not been released. f must not
// start another traversal on the same Slice; that is unsupported.
func (s *Slice[T]) VisitEach(f func(Elem[T])) {
	if s.guard != guardDead {
		panic(panicTraversalGuard)
	}
	n := len(s.content.elems)
	if s.content.owned {
		// Already owned: no transition can happen, so the wrapper carries no
		// transition check at all.
		v := ownedElem[T]{elems: s.content.elems}
		for i := 0; i < n; i++ {
			v.idx = i
			f(&v)
		}
		return
	}
	v := borrowedElem[T]{s: s, elems: s.content.elems}
	for i := 0; i < n; i++ {
		v.idx = i
		f(&v)
	}
}

// borrowedElem visits elements of a container whose contents may still be
// borrowed. Its write path relocates onto the owned clone exactly once.
type borrowedElem[T any] struct {
	s     *Slice[T]
	elems []T
	idx   int
	owned bool
}

func (v *borrowedElem[T]) Value() T {
	return v.elems[v.idx]
}

func (v *borrowedElem[T]) Mut() *T {
	if !v.owned {
		v.s.content.ensureOwned()
		// Length is preserved by the clone, so idx carries over unchanged;
		// only the backing storage moves.
		v.elems = v.s.content.elems
		v.owned = true
	}
	return &v.elems[v.idx]
}

func (v *borrowedElem[T]) Set(x T) {
	*v.Mut() = x
}

// ownedElem visits elements of already-owned contents; writes go straight
// through.
type ownedElem[T any] struct {
	elems []T
	idx   int
}

func (v *ownedElem[T]) Value() T {
	return v.elems[v.idx]
}

func (v *ownedElem[T]) Mut() *T {
	return &v.elems[v.idx]
}

func (v *ownedElem[T]) Set(x T) {
	v.elems[v.idx] = x
}
