// Package cowslice provides a copy-on-write sequence container for slices.
//
// A Slice is constructed either borrowing an external []T or owning one
// outright. A borrowing Slice can be read, iterated, and even iterated
// mutably without copying anything; the borrowed contents are cloned on
// demand, the first time an element is actually written. If no element is
// ever written, the clone is skipped entirely.
//
// Key features:
//   - Deferred cloning: mutable iteration over borrowed storage clones only
//     on the first write, and exactly once per container
//   - Read access never clones, however extensive
//   - The external slice is never modified through the container
//   - Three traversal forms with different cost profiles: a safety-checked
//     external iterator (IterMut), a low-overhead internal visitor
//     (VisitEach), and an eager form that clones up front (EagerElems)
//
// Basic usage:
//
//	animals := []string{"lion", "tiger", "dragon"}
//	cow := cowslice.Borrow(animals)
//
//	iter := cow.IterMut()
//	for item, ok := iter.Next(); ok; item, ok = iter.Next() {
//	    if item.Value() == "dragon" {
//	        item.Set("sparrow") // animals is cloned here
//	    }
//	    item.Release()
//	}
//
//	// animals still contains "dragon"; cow does not.
//
// The mutable iterator hands out one Item at a time. An Item is a short-lived
// capability to read and write a single element; it must be released before
// the iterator is advanced again. Violations of that contract panic rather
// than risk writes landing in stale storage. VisitEach avoids the per-element
// bookkeeping entirely by never letting an element handle escape between
// callback invocations.
//
// A Slice and everything issued from it (iterators, items) is confined to a
// single goroutine. There is no internal locking.
package cowslice
