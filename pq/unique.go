package pq

import (
	"fmt"
	"iter"

	"github.com/ddirect/pqueue/dheap"
)

// UniqueQueue is a min-priority queue that rejects duplicate elements,
// identified by a caller-supplied key, and supports O(log n) removal and
// priority update of any element already present — not just the minimum.
// It composes the engine with a dheap.IndexedProvider, which is what makes
// looking an element up by key, rather than by slot, an O(1) operation.
type UniqueQueue[E any, P any, K comparable] struct {
	h    *dheap.Heap[E, P, *dheap.IndexedProvider[E, P, K]]
	prov *dheap.IndexedProvider[E, P, K]
}

// NewUniqueQueue builds an empty UniqueQueue ordered by compare over
// priorities derived via getPriority, with element identity given by key.
func NewUniqueQueue[E any, P any, K comparable](compare func(a, b P) int, getPriority func(e E) P, key func(e E) K) *UniqueQueue[E, P, K] {
	prov := dheap.NewIndexedProvider(compare, getPriority, key)
	return &UniqueQueue[E, P, K]{h: dheap.New[E, P](prov), prov: prov}
}

// NewOrderedUniqueQueue builds an empty UniqueQueue whose priority type
// supplies its own ordering via dheap.Comparer, so the caller does not
// have to write a separate three-way compare function.
func NewOrderedUniqueQueue[E any, P dheap.Comparer[P], K comparable](getPriority func(e E) P, key func(e E) K) *UniqueQueue[E, P, K] {
	return NewUniqueQueue[E, P, K](dheap.CompareFunc[P], getPriority, key)
}

// Contains reports whether an element with the given key is present.
func (q *UniqueQueue[E, P, K]) Contains(key K) bool {
	_, ok := q.prov.Slot(key)
	return ok
}

// Enqueue inserts e. It fails with an ErrDuplicate-wrapping error if an
// element with the same key is already present.
func (q *UniqueQueue[E, P, K]) Enqueue(e E) error {
	k := q.prov.Key(e)
	if _, ok := q.prov.Slot(k); ok {
		return fmt.Errorf("pq: enqueue %v: %w", k, ErrDuplicate)
	}
	q.h.Add(e)
	return nil
}

// TryEnqueue is the non-throwing form of Enqueue.
func (q *UniqueQueue[E, P, K]) TryEnqueue(e E) bool {
	k := q.prov.Key(e)
	if _, ok := q.prov.Slot(k); ok {
		return false
	}
	q.h.Add(e)
	return true
}

// Update replaces the element with the same key as e and restores the heap
// invariant. It fails with an ErrNotPresent-wrapping error if no such
// element exists.
func (q *UniqueQueue[E, P, K]) Update(e E) error {
	k := q.prov.Key(e)
	slot, ok := q.prov.Slot(k)
	if !ok {
		return fmt.Errorf("pq: update %v: %w", k, ErrNotPresent)
	}
	return q.h.Update(slot, e)
}

// TryUpdate is the non-throwing form of Update.
func (q *UniqueQueue[E, P, K]) TryUpdate(e E) bool {
	k := q.prov.Key(e)
	slot, ok := q.prov.Slot(k)
	if !ok {
		return false
	}
	return q.h.TryUpdate(slot, e)
}

// UpdateOrEnqueue upserts e: it updates the element with the same key if
// one is present, or enqueues e as new otherwise.
func (q *UniqueQueue[E, P, K]) UpdateOrEnqueue(e E) {
	k := q.prov.Key(e)
	if slot, ok := q.prov.Slot(k); ok {
		q.h.TryUpdate(slot, e)
		return
	}
	q.h.Add(e)
}

// Remove removes and returns the element identified by key. It fails with
// an ErrNotPresent-wrapping error if no such element exists.
func (q *UniqueQueue[E, P, K]) Remove(key K) (E, error) {
	slot, ok := q.prov.Slot(key)
	if !ok {
		var zero E
		return zero, fmt.Errorf("pq: remove %v: %w", key, ErrNotPresent)
	}
	return q.h.Remove(slot)
}

// TryRemove is the non-throwing form of Remove.
func (q *UniqueQueue[E, P, K]) TryRemove(key K) (E, bool) {
	slot, ok := q.prov.Slot(key)
	if !ok {
		var zero E
		return zero, false
	}
	return q.h.TryRemove(slot)
}

// RemoveMin removes and returns the minimum element.
func (q *UniqueQueue[E, P, K]) RemoveMin() (E, error) {
	return q.h.RemoveMin()
}

// TryRemoveMin is the non-throwing form of RemoveMin.
func (q *UniqueQueue[E, P, K]) TryRemoveMin() (E, bool) {
	return q.h.TryRemoveMin()
}

// PeekMin returns the minimum element without removing it.
func (q *UniqueQueue[E, P, K]) PeekMin() (E, error) {
	return q.h.PeekMin()
}

// TryPeekMin is the non-throwing form of PeekMin.
func (q *UniqueQueue[E, P, K]) TryPeekMin() (E, bool) {
	return q.h.TryPeekMin()
}

// Count returns the number of queued elements.
func (q *UniqueQueue[E, P, K]) Count() int {
	return q.h.Count()
}

// Clear removes every element; the key index is emptied along with it.
func (q *UniqueQueue[E, P, K]) Clear() {
	q.h.Clear()
}

// All returns an iterator over the queued elements in heap order, which is
// not priority order. See dheap.Heap.All for the modification guard.
func (q *UniqueQueue[E, P, K]) All() iter.Seq2[E, error] {
	return q.h.All()
}
