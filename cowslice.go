package cowslice

import "slices"

// Slice is a copy-on-write wrapper around a []T.
//
// A Slice constructed with Borrow shares the external slice's storage until
// the first write, at which point the contents are cloned and the container
// takes ownership of the clone. A Slice constructed with Own owns its storage
// from the start. All methods must be called from a single goroutine.
type Slice[T any] struct {
	content content[T]

	// Traversal state for the current mutable iteration: pos is the index of
	// the next element to produce, end is one past the last. Both are element
	// indexes into content.elems.
	pos int
	end int

	guard guardState
}

// Borrow creates a Slice borrowing ext. The external slice must outlive the
// container, and its length must not change while the container is in use.
// The first write through the container clones ext; ext itself is never
// modified.
func Borrow[T any](ext []T) *Slice[T] {
	return &Slice[T]{content: content[T]{elems: ext}}
}

// Own creates a Slice that owns elems outright. The caller must not use
// elems afterwards.
func Own[T any](elems []T) *Slice[T] {
	return &Slice[T]{content: content[T]{elems: elems, owned: true}}
}

// IsOwned reports whether the contents are owned. It can be used to
// determine whether the Slice still borrows the external slice it was
// constructed from.
func (s *Slice[T]) IsOwned() bool {
	return s.content.owned
}

// EnsureOwned immediately takes ownership, cloning the borrowed slice if the
// contents are not owned yet. After it returns, IsOwned reports true.
func (s *Slice[T]) EnsureOwned() {
	s.content.ensureOwned()
}

// IntoOwned consumes the Slice and returns the owned storage, cloning first
// if the contents are still borrowed. The Slice must not be used afterwards.
func (s *Slice[T]) IntoOwned() []T {
	s.content.ensureOwned()
	return s.content.elems
}

// ToOwned returns a fresh copy of the visible contents. It never changes the
// ownership state.
func (s *Slice[T]) ToOwned() []T {
	return slices.Clone(s.content.elems)
}

// Len returns the number of elements.
func (s *Slice[T]) Len() int {
	return len(s.content.elems)
}

// At returns the element at index i. It panics if i is out of range, with
// the same semantics as indexing a plain slice. Reading never clones.
func (s *Slice[T]) At(i int) T {
	return s.content.elems[i]
}

// Get returns the element at index i, or the zero value and false if i is
// out of range.
func (s *Slice[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(s.content.elems) {
		var zero T
		return zero, false
	}
	return s.content.elems[i], true
}

// Set writes v to index i, taking ownership first if necessary. It panics if
// i is out of range.
func (s *Slice[T]) Set(i int, v T) {
	s.content.ensureOwned()
	s.content.elems[i] = v
}

// Append appends vals, taking ownership first if necessary. Append must not
// be called while a traversal is in progress: resizing invalidates traversal
// positions.
func (s *Slice[T]) Append(vals ...T) {
	s.content.ensureOwned()
	s.content.elems = append(s.content.elems, vals...)
}

// EagerElems takes ownership immediately (cloning if necessary) and returns
// the owned backing slice for direct in-place mutation. Unlike IterMut this
// always pays the clone cost, but iterating the returned slice carries no
// per-element bookkeeping at all. The returned slice must not be grown or
// shrunk; it aliases the container's storage.
func (s *Slice[T]) EagerElems() []T {
	if s.guard != guardDead {
		panic(panicTraversalGuard)
	}
	s.content.ensureOwned()
	return s.content.elems
}
