package cowslice

import "slices"

// content holds whichever storage the container currently exposes: either a
// slice it owns, or one it merely borrows from an external owner. The
// borrowed slice's length must not change for the lifetime of the container.
type content[T any] struct {
	elems []T
	owned bool
}

// ensureOwned performs the one-way borrowed-to-owned transition. It is
// idempotent: once the contents are owned it does nothing. The transition
// clones the borrowed elements into fresh storage and never touches the
// external slice. Any position computed against the old storage is invalid
// afterwards; relocation is the caller's responsibility.
func (c *content[T]) ensureOwned() {
	if c.owned {
		return
	}
	c.elems = slices.Clone(c.elems)
	c.owned = true
}
