// Package dheap implements a generic, array-backed, d-ary min-heap whose
// every positional change is reported to a caller-supplied Provider. The
// callback makes it possible for a caller to maintain an external
// element-to-slot index and so support O(log n) removal and priority update
// of an arbitrary interior element, which a plain heap.Interface-style
// design cannot offer.
package dheap

import "errors"

// Arity is the branching factor of the heap. Shallower trees trade fewer
// levels for more comparisons per level; this value is not meant to be
// re-tuned at runtime, only at compile time by an implementer targeting a
// different platform.
const Arity = 4

// Provider supplies the ordering over priorities and is notified of every
// slot a live element occupies. Compare and GetPriority must be pure and
// side-effect free; the engine may call GetPriority more than once per
// element per operation.
//
// Moved, Removed and Cleared run synchronously inside the engine's current
// operation. A Provider must not call back into the Heap it is attached to
// from within any of these methods.
type Provider[E any, P any] interface {
	// Compare returns <0, 0 or >0 as the priority of a is less than, equal
	// to, or greater than the priority of b.
	Compare(a, b P) int

	// GetPriority derives the priority of an element.
	GetPriority(e E) P

	// Moved is invoked after e is written into slot. It may be invoked more
	// than once per element during a single heap operation; only the last
	// call observes the element's final resting slot.
	Moved(e E, slot int)

	// Removed is invoked before the hole left by e's departure from slot is
	// refilled.
	Removed(e E, slot int)

	// Cleared is invoked once when the heap becomes empty via Clear. No
	// per-element Removed calls accompany it.
	Cleared()
}

var (
	// ErrEmpty is returned by PeekMin/RemoveMin when the heap holds no elements.
	ErrEmpty = errors.New("dheap: heap is empty")
	// ErrOutOfRange is returned when a slot argument falls outside [0, Count()).
	ErrOutOfRange = errors.New("dheap: slot out of range")
	// ErrModified is yielded by an enumerator that observes a mutation that
	// happened after it was created.
	ErrModified = errors.New("dheap: heap modified during enumeration")
	// ErrInvalidArgument is panicked by constructors given a nil comparator
	// or a nil priority/key selector.
	ErrInvalidArgument = errors.New("dheap: invalid argument")
)
