package pq

import (
	"fmt"
	"iter"

	"github.com/ddirect/pqueue/dheap"
)

// Pair bundles an element with a priority supplied separately from it, so
// a caller's element type never has to implement GetPriority itself. Using
// this as the stored element over duplicating the engine for an
// "element is its own priority" case keeps PairQueue a thin wrapper around
// Queue: a trivial selector reading Prio is cheap enough to inline.
type Pair[E any, P any] struct {
	Elem E
	Prio P
}

func pairPriority[E any, P any](p Pair[E, P]) P { return p.Prio }

// PairQueue is a min-priority queue that stores elements alongside an
// explicitly supplied priority, rather than deriving the priority from the
// element itself. It tolerates duplicate elements, exactly like Queue.
type PairQueue[E any, P any] struct {
	q *Queue[Pair[E, P], P]
}

// NewPairQueue builds an empty PairQueue ordered by compare.
func NewPairQueue[E any, P any](compare func(a, b P) int) *PairQueue[E, P] {
	return &PairQueue[E, P]{q: NewQueue[Pair[E, P], P](compare, pairPriority[E, P])}
}

// NewPairQueueFromSlices builds a PairQueue from parallel elems/priorities
// slices via a single bulk-heapify pass. The two slices must have equal
// length, or this panics with an error wrapping dheap.ErrInvalidArgument.
func NewPairQueueFromSlices[E any, P any](compare func(a, b P) int, elems []E, priorities []P) *PairQueue[E, P] {
	if len(elems) != len(priorities) {
		panic(fmt.Errorf("pq: NewPairQueueFromSlices: elems and priorities have different lengths: %w", dheap.ErrInvalidArgument))
	}
	pairs := make([]Pair[E, P], len(elems))
	for i := range elems {
		pairs[i] = Pair[E, P]{Elem: elems[i], Prio: priorities[i]}
	}
	return &PairQueue[E, P]{q: NewQueueFromSlice(compare, pairPriority[E, P], pairs)}
}

// NewOrderedPairQueue builds an empty PairQueue whose priority type
// supplies its own ordering via dheap.Comparer, so the caller does not
// have to write a separate three-way compare function.
func NewOrderedPairQueue[E any, P dheap.Comparer[P]]() *PairQueue[E, P] {
	return NewPairQueue[E, P](dheap.CompareFunc[P])
}

// NewOrderedPairQueueFromSlices is the dheap.Comparer-ordered form of
// NewPairQueueFromSlices.
func NewOrderedPairQueueFromSlices[E any, P dheap.Comparer[P]](elems []E, priorities []P) *PairQueue[E, P] {
	return NewPairQueueFromSlices[E, P](dheap.CompareFunc[P], elems, priorities)
}

// Enqueue inserts e with the given priority.
func (q *PairQueue[E, P]) Enqueue(e E, priority P) {
	q.q.Enqueue(Pair[E, P]{Elem: e, Prio: priority})
}

// RemoveMin removes and returns the minimum element along with its
// priority.
func (q *PairQueue[E, P]) RemoveMin() (E, P, error) {
	p, err := q.q.RemoveMin()
	return p.Elem, p.Prio, err
}

// TryRemoveMin is the non-throwing form of RemoveMin.
func (q *PairQueue[E, P]) TryRemoveMin() (E, P, bool) {
	p, ok := q.q.TryRemoveMin()
	return p.Elem, p.Prio, ok
}

// PeekMin returns the minimum element and its priority without removing
// it.
func (q *PairQueue[E, P]) PeekMin() (E, P, error) {
	p, err := q.q.PeekMin()
	return p.Elem, p.Prio, err
}

// TryPeekMin is the non-throwing form of PeekMin.
func (q *PairQueue[E, P]) TryPeekMin() (E, P, bool) {
	p, ok := q.q.TryPeekMin()
	return p.Elem, p.Prio, ok
}

// Count returns the number of queued elements.
func (q *PairQueue[E, P]) Count() int {
	return q.q.Count()
}

// Clear removes every element.
func (q *PairQueue[E, P]) Clear() {
	q.q.Clear()
}

// All returns an iterator over the queued (element, priority) pairs in
// heap order, which is not priority order. See dheap.Heap.All for the
// modification guard.
func (q *PairQueue[E, P]) All() iter.Seq2[Pair[E, P], error] {
	return q.q.All()
}
