// Package pq provides the public, user-facing priority queue variants built
// on top of dheap: a plain duplicate-tolerant queue, a unique-elements
// updateable queue, and a queue that stores (element, priority) pairs for
// callers who would rather not implement GetPriority on their element
// type. Each façade translates element- or key-keyed operations into the
// slot-keyed operations dheap.Heap exposes.
package pq

import (
	"iter"

	"github.com/ddirect/pqueue/dheap"
)

// Queue is a min-priority queue that tolerates duplicate elements; it has
// no notion of element identity, so it cannot support Remove-by-element or
// Update-by-element, only the slot-free RemoveMin family.
type Queue[E any, P any] struct {
	h *dheap.Heap[E, P, *dheap.FuncProvider[E, P]]
}

// NewQueue builds an empty Queue ordered by compare over priorities
// derived from elements via getPriority.
func NewQueue[E any, P any](compare func(a, b P) int, getPriority func(e E) P) *Queue[E, P] {
	return &Queue[E, P]{h: dheap.New[E, P](dheap.NewFuncProvider(compare, getPriority))}
}

// NewQueueFromSlice builds a Queue from elems via a single bulk-heapify
// pass rather than len(elems) individual inserts.
func NewQueueFromSlice[E any, P any](compare func(a, b P) int, getPriority func(e E) P, elems []E) *Queue[E, P] {
	return &Queue[E, P]{h: dheap.NewFromSlice[E, P](dheap.NewFuncProvider(compare, getPriority), elems)}
}

// NewOrderedQueue builds an empty Queue whose priority type supplies its
// own ordering via dheap.Comparer, so the caller does not have to write a
// separate three-way compare function.
func NewOrderedQueue[E any, P dheap.Comparer[P]](getPriority func(e E) P) *Queue[E, P] {
	return NewQueue[E, P](dheap.CompareFunc[P], getPriority)
}

// NewOrderedQueueFromSlice is the dheap.Comparer-ordered form of
// NewQueueFromSlice.
func NewOrderedQueueFromSlice[E any, P dheap.Comparer[P]](getPriority func(e E) P, elems []E) *Queue[E, P] {
	return NewQueueFromSlice[E, P](dheap.CompareFunc[P], getPriority, elems)
}

// Enqueue inserts e.
func (q *Queue[E, P]) Enqueue(e E) {
	q.h.Add(e)
}

// RemoveMin removes and returns the minimum element; it fails with
// dheap.ErrEmpty when the queue holds nothing.
func (q *Queue[E, P]) RemoveMin() (E, error) {
	return q.h.RemoveMin()
}

// TryRemoveMin is the non-throwing form of RemoveMin.
func (q *Queue[E, P]) TryRemoveMin() (E, bool) {
	return q.h.TryRemoveMin()
}

// PeekMin returns the minimum element without removing it.
func (q *Queue[E, P]) PeekMin() (E, error) {
	return q.h.PeekMin()
}

// TryPeekMin is the non-throwing form of PeekMin.
func (q *Queue[E, P]) TryPeekMin() (E, bool) {
	return q.h.TryPeekMin()
}

// Count returns the number of queued elements.
func (q *Queue[E, P]) Count() int {
	return q.h.Count()
}

// Clear removes every element.
func (q *Queue[E, P]) Clear() {
	q.h.Clear()
}

// All returns an iterator over the queued elements in heap order, which is
// not priority order. See dheap.Heap.All for the modification guard.
func (q *Queue[E, P]) All() iter.Seq2[E, error] {
	return q.h.All()
}
