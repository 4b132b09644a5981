package dheap

import (
	"fmt"
	"iter"
)

// Heap is a d-ary, array-backed min-heap over elements of type E ranked by
// priorities of type P, as produced by Prov. Prov is a type parameter
// rather than a stored interface value so that Compare/GetPriority/Moved
// calls monomorphize to direct calls instead of going through a vtable.
//
// A Heap is not safe for concurrent use and no method may be called
// re-entrantly from inside a Provider callback.
type Heap[E any, P any, Prov Provider[E, P]] struct {
	s             []E
	prov          Prov
	version       uint64
	suppressMoved bool
}

// New creates an empty heap driven by prov.
func New[E any, P any, Prov Provider[E, P]](prov Prov) *Heap[E, P, Prov] {
	return &Heap[E, P, Prov]{prov: prov}
}

// NewFromSlice builds a heap containing every element of elems using a
// single bulk heapify pass instead of n individual inserts. Prov observes
// each element's final slot exactly once, in heap order, after the pass
// completes rather than once per intermediate sift.
func NewFromSlice[E any, P any, Prov Provider[E, P]](prov Prov, elems []E) *Heap[E, P, Prov] {
	h := &Heap[E, P, Prov]{prov: prov}
	if len(elems) == 0 {
		return h
	}
	h.s = append(h.s, elems...)
	h.version++
	h.heapify()
	return h
}

// Count returns the number of elements currently held.
func (h *Heap[E, P, Prov]) Count() int {
	return len(h.s)
}

// Add inserts e and restores the heap invariant.
func (h *Heap[E, P, Prov]) Add(e E) {
	h.version++
	n := len(h.s)
	h.s = append(h.s, e)
	h.pushUp(n, e, true)
}

// PeekMin returns the minimum element without removing it. It fails with
// ErrEmpty when the heap holds no elements.
func (h *Heap[E, P, Prov]) PeekMin() (E, error) {
	if len(h.s) == 0 {
		var zero E
		return zero, fmt.Errorf("dheap: peek min: %w", ErrEmpty)
	}
	return h.s[0], nil
}

// TryPeekMin is the non-throwing form of PeekMin.
func (h *Heap[E, P, Prov]) TryPeekMin() (e E, ok bool) {
	if len(h.s) == 0 {
		return e, false
	}
	return h.s[0], true
}

// Peek returns the element at slot without any ordering implication. It
// fails with ErrOutOfRange when slot is outside [0, Count()).
func (h *Heap[E, P, Prov]) Peek(slot int) (E, error) {
	if slot < 0 || slot >= len(h.s) {
		var zero E
		return zero, fmt.Errorf("dheap: peek %d: %w", slot, ErrOutOfRange)
	}
	return h.s[slot], nil
}

// RemoveMin removes and returns the minimum element. It fails with
// ErrEmpty when the heap holds no elements.
func (h *Heap[E, P, Prov]) RemoveMin() (E, error) {
	if len(h.s) == 0 {
		var zero E
		return zero, fmt.Errorf("dheap: remove min: %w", ErrEmpty)
	}
	h.version++
	return h.removeAt(0), nil
}

// TryRemoveMin is the non-throwing form of RemoveMin.
func (h *Heap[E, P, Prov]) TryRemoveMin() (e E, ok bool) {
	if len(h.s) == 0 {
		return e, false
	}
	h.version++
	return h.removeAt(0), true
}

// Remove removes and returns the element at slot, which may be any live
// slot, not just the root. It fails with ErrOutOfRange when slot is
// outside [0, Count()).
func (h *Heap[E, P, Prov]) Remove(slot int) (E, error) {
	if slot < 0 || slot >= len(h.s) {
		var zero E
		return zero, fmt.Errorf("dheap: remove %d: %w", slot, ErrOutOfRange)
	}
	h.version++
	return h.removeAt(slot), nil
}

// TryRemove is the non-throwing form of Remove.
func (h *Heap[E, P, Prov]) TryRemove(slot int) (e E, ok bool) {
	if slot < 0 || slot >= len(h.s) {
		return e, false
	}
	h.version++
	return h.removeAt(slot), true
}

// Update installs e at slot and restores the heap invariant, sifting it up
// or down as needed. It fails with ErrOutOfRange when slot is outside
// [0, Count()).
func (h *Heap[E, P, Prov]) Update(slot int, e E) error {
	if slot < 0 || slot >= len(h.s) {
		return fmt.Errorf("dheap: update %d: %w", slot, ErrOutOfRange)
	}
	h.version++
	h.updateAt(slot, e)
	return nil
}

// TryUpdate is the non-throwing form of Update.
func (h *Heap[E, P, Prov]) TryUpdate(slot int, e E) bool {
	if slot < 0 || slot >= len(h.s) {
		return false
	}
	h.version++
	h.updateAt(slot, e)
	return true
}

// Clear removes every element. The backing buffer is not released, only
// logically emptied; vacated slots are zeroed so reference-bearing element
// types do not retain anything. Prov observes a single Cleared call, never
// a Removed call per element.
func (h *Heap[E, P, Prov]) Clear() {
	if len(h.s) == 0 {
		return
	}
	h.version++
	clear(h.s)
	h.s = h.s[:0]
	h.prov.Cleared()
}

// All returns an iterator over the elements in slot order (0 .. Count()-1),
// which is not priority order. The iterator snapshots the heap's version
// counter when All is called; if a mutation lands between that snapshot and
// an advance of the iteration, the iterator yields ErrModified and stops.
func (h *Heap[E, P, Prov]) All() iter.Seq2[E, error] {
	version := h.version
	return func(yield func(E, error) bool) {
		for i := 0; ; i++ {
			if h.version != version {
				var zero E
				yield(zero, fmt.Errorf("dheap: %w", ErrModified))
				return
			}
			if i >= len(h.s) {
				return
			}
			if !yield(h.s[i], nil) {
				return
			}
		}
	}
}

// removeAt performs the removal proper: the caller has already bumped the
// version counter and validated slot. The backing slice is truncated to
// its post-removal length before the tail replacement is sifted, so the
// sift never considers the vacated tail slot as a candidate position.
func (h *Heap[E, P, Prov]) removeAt(slot int) E {
	v := h.s[slot]
	h.prov.Removed(v, slot)
	n := len(h.s) - 1
	if slot == n {
		var zero E
		h.s[n] = zero
		h.s = h.s[:n]
		return v
	}
	t := h.s[n]
	var zero E
	h.s[n] = zero
	h.s = h.s[:n]
	h.updateAt(slot, t)
	return v
}

// updateAt installs e at slot by first attempting a sift-up and, only if
// that performed no motion, falling back to a sift-down. This two-phase
// pattern is required because the replacement's priority may land on
// either side of the slot's former occupant; a sift-down-only
// implementation is only correct at the root, where sift-up is a no-op
// regardless.
func (h *Heap[E, P, Prov]) updateAt(slot int, e E) {
	if !h.pushUp(slot, e, false) {
		h.pushDown(slot, e, true)
	}
}

// pushUp sifts the floating element e up from slot j, returning whether any
// ancestor was displaced. If force is set, e is written (and Moved
// reported) at its final resting slot even when no displacement occurred;
// Add relies on this so a newly appended element always gets a Moved call.
func (h *Heap[E, P, Prov]) pushUp(j int, e E, force bool) bool {
	ep := h.prov.GetPriority(e)
	moved := false
	for j > 0 {
		parent := (j - 1) >> 2
		if h.prov.Compare(ep, h.prov.GetPriority(h.s[parent])) >= 0 {
			break
		}
		h.s[j] = h.s[parent]
		h.notifyMoved(h.s[j], j)
		j = parent
		moved = true
	}
	if moved || force {
		h.s[j] = e
		h.notifyMoved(e, j)
	}
	return moved
}

// pushDown sifts the floating element e down from slot i, returning
// whether any child was displaced. If force is set, e is written at its
// final resting slot even when no displacement occurred.
func (h *Heap[E, P, Prov]) pushDown(i int, e E, force bool) bool {
	n := len(h.s)
	ep := h.prov.GetPriority(e)
	moved := false
	for {
		first := (i << 2) + 1
		if first >= n {
			break
		}
		last := first + Arity
		if last > n {
			last = n
		}
		best := first
		bestP := h.prov.GetPriority(h.s[first])
		for c := first + 1; c < last; c++ {
			cp := h.prov.GetPriority(h.s[c])
			if h.prov.Compare(cp, bestP) < 0 {
				best = c
				bestP = cp
			}
		}
		if h.prov.Compare(ep, bestP) <= 0 {
			break
		}
		h.s[i] = h.s[best]
		h.notifyMoved(h.s[i], i)
		i = best
		moved = true
	}
	if moved || force {
		h.s[i] = e
		h.notifyMoved(e, i)
	}
	return moved
}

// heapify restores the heap invariant over the whole backing slice in
// place, suppressing the per-move notifications a naive sequence of
// pushDown calls would otherwise generate and instead reporting each
// element's final slot exactly once, in a single pass, once the walk is
// complete.
func (h *Heap[E, P, Prov]) heapify() {
	n := len(h.s)
	h.suppressMoved = true
	for i := (n - 1) >> 2; i >= 0; i-- {
		h.pushDown(i, h.s[i], false)
	}
	h.suppressMoved = false
	for i, e := range h.s {
		h.prov.Moved(e, i)
	}
}

func (h *Heap[E, P, Prov]) notifyMoved(e E, slot int) {
	if !h.suppressMoved {
		h.prov.Moved(e, slot)
	}
}
