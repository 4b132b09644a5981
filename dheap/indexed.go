package dheap

// IndexedProvider maintains a map from a caller-chosen key K (typically the
// element itself, or some field of it) to the slot currently holding the
// corresponding element. It is the stock Provider behind the unique,
// updateable façade: every Moved call upserts the index, every Removed call
// deletes from it, and Cleared empties it, which keeps index[key(e)] equal
// to the slot currently holding e across every heap movement.
type IndexedProvider[E any, P any, K comparable] struct {
	compare     func(a, b P) int
	getPriority func(e E) P
	key         func(e E) K
	index       map[K]int
}

// NewIndexedProvider builds an IndexedProvider. compare and getPriority
// supply the priority order (see Provider); key extracts the identity used
// to look elements up in the index. All three must be non-nil.
func NewIndexedProvider[E any, P any, K comparable](compare func(a, b P) int, getPriority func(e E) P, key func(e E) K) *IndexedProvider[E, P, K] {
	if compare == nil || getPriority == nil || key == nil {
		panic(ErrInvalidArgument)
	}
	return &IndexedProvider[E, P, K]{
		compare:     compare,
		getPriority: getPriority,
		key:         key,
		index:       make(map[K]int),
	}
}

func (p *IndexedProvider[E, P, K]) Compare(a, b P) int { return p.compare(a, b) }
func (p *IndexedProvider[E, P, K]) GetPriority(e E) P  { return p.getPriority(e) }

func (p *IndexedProvider[E, P, K]) Moved(e E, slot int) {
	p.index[p.key(e)] = slot
}

func (p *IndexedProvider[E, P, K]) Removed(e E, slot int) {
	delete(p.index, p.key(e))
}

func (p *IndexedProvider[E, P, K]) Cleared() {
	clear(p.index)
}

// Key returns the index key of e.
func (p *IndexedProvider[E, P, K]) Key(e E) K {
	return p.key(e)
}

// Slot reports the slot currently holding the element identified by key,
// if any.
func (p *IndexedProvider[E, P, K]) Slot(key K) (int, bool) {
	slot, ok := p.index[key]
	return slot, ok
}

// Len returns the number of keys currently indexed; it is kept equal to
// the owning Heap's Count by construction.
func (p *IndexedProvider[E, P, K]) Len() int {
	return len(p.index)
}
