package pq_test

import (
	"testing"

	"github.com/ddirect/pqueue/dheap"
	"github.com/ddirect/pqueue/pq"
	"github.com/stretchr/testify/assert"
)

type namedYear struct {
	name string
	year int
}

func yearOf(n namedYear) int    { return n.year }
func nameOf(n namedYear) string { return n.name }

// Test_UniqueQueue_Beatles exercises the literal "unique queue with string
// elements and integer priorities" scenario. Ties between John and Ringo
// (both born 1940) are not required to break any particular way.
func Test_UniqueQueue_Beatles(t *testing.T) {
	q := pq.NewUniqueQueue[namedYear, int, string](cmpInt, yearOf, nameOf)

	assert.NoError(t, q.Enqueue(namedYear{"John", 1940}))
	assert.NoError(t, q.Enqueue(namedYear{"Paul", 1942}))
	assert.NoError(t, q.Enqueue(namedYear{"George", 1943}))
	assert.NoError(t, q.Enqueue(namedYear{"Ringo", 1940}))

	var names []string
	for q.Count() > 0 {
		v, err := q.RemoveMin()
		assert.NoError(t, err)
		names = append(names, v.name)
	}

	assert.Len(t, names, 4)
	first2 := map[string]bool{names[0]: true, names[1]: true}
	assert.True(t, first2["John"] && first2["Ringo"])
	assert.Equal(t, []string{"Paul", "George"}, names[2:])
}

func Test_UniqueQueue_DuplicateAndNotPresent(t *testing.T) {
	q := pq.NewUniqueQueue[namedYear, int, string](cmpInt, yearOf, nameOf)

	assert.NoError(t, q.Enqueue(namedYear{"A", 1}))
	err := q.Enqueue(namedYear{"A", 2})
	assert.ErrorIs(t, err, pq.ErrDuplicate)

	ok := q.TryEnqueue(namedYear{"A", 3})
	assert.False(t, ok)

	err = q.Update(namedYear{"missing", 5})
	assert.ErrorIs(t, err, pq.ErrNotPresent)

	ok = q.TryUpdate(namedYear{"missing", 5})
	assert.False(t, ok)

	_, err = q.Remove("missing")
	assert.ErrorIs(t, err, pq.ErrNotPresent)

	_, ok = q.TryRemove("missing")
	assert.False(t, ok)
}

// Test_UniqueQueue_UpdateMovesUp exercises "update that moves element up":
// after lowering A's priority below everything else, it becomes the
// minimum.
func Test_UniqueQueue_UpdateMovesUp(t *testing.T) {
	q := pq.NewUniqueQueue[namedYear, int, string](cmpInt, yearOf, nameOf)
	assert.NoError(t, q.Enqueue(namedYear{"A", 100}))
	assert.NoError(t, q.Enqueue(namedYear{"B", 50}))
	assert.NoError(t, q.Enqueue(namedYear{"C", 75}))

	assert.NoError(t, q.Update(namedYear{"A", 10}))

	v, err := q.RemoveMin()
	assert.NoError(t, err)
	assert.Equal(t, "A", v.name)
}

// Test_UniqueQueue_UpdateMovesDown exercises "update that moves element
// down": after raising B's priority above everything else, C becomes the
// minimum.
func Test_UniqueQueue_UpdateMovesDown(t *testing.T) {
	q := pq.NewUniqueQueue[namedYear, int, string](cmpInt, yearOf, nameOf)
	assert.NoError(t, q.Enqueue(namedYear{"A", 100}))
	assert.NoError(t, q.Enqueue(namedYear{"B", 50}))
	assert.NoError(t, q.Enqueue(namedYear{"C", 75}))

	assert.NoError(t, q.Update(namedYear{"B", 1000}))

	v, err := q.RemoveMin()
	assert.NoError(t, err)
	assert.Equal(t, "C", v.name)
}

func Test_UniqueQueue_UpdateOrEnqueue(t *testing.T) {
	q := pq.NewUniqueQueue[namedYear, int, string](cmpInt, yearOf, nameOf)
	q.UpdateOrEnqueue(namedYear{"A", 10})
	assert.Equal(t, 1, q.Count())
	assert.True(t, q.Contains("A"))

	q.UpdateOrEnqueue(namedYear{"A", 1000})
	assert.Equal(t, 1, q.Count())
	q.UpdateOrEnqueue(namedYear{"B", 5})
	assert.Equal(t, 2, q.Count())

	v, err := q.RemoveMin()
	assert.NoError(t, err)
	assert.Equal(t, "B", v.name)
}

func Test_UniqueQueue_ClearResetsIndex(t *testing.T) {
	q := pq.NewUniqueQueue[namedYear, int, string](cmpInt, yearOf, nameOf)
	assert.NoError(t, q.Enqueue(namedYear{"A", 1}))
	q.Clear()
	assert.Equal(t, 0, q.Count())
	assert.False(t, q.Contains("A"))

	assert.NoError(t, q.Enqueue(namedYear{"A", 1}))
	assert.True(t, q.Contains("A"))
}

func Test_UniqueQueue_InvalidArgumentPanics(t *testing.T) {
	assert.Panics(t, func() {
		dheap.NewIndexedProvider[namedYear, int, string](nil, yearOf, nameOf)
	})
}

// keyedOrdered is a minimal keyed element whose priority supplies its own
// ordering, for exercising the dheap.Comparer-based constructor.
type keyedOrdered struct {
	key  string
	prio intPriority
}

func orderedPriority(k keyedOrdered) intPriority { return k.prio }
func orderedKey(k keyedOrdered) string           { return k.key }

func Test_UniqueQueue_OrderedConstructor(t *testing.T) {
	q := pq.NewOrderedUniqueQueue[keyedOrdered, intPriority, string](orderedPriority, orderedKey)
	assert.NoError(t, q.Enqueue(keyedOrdered{"a", 5}))
	assert.NoError(t, q.Enqueue(keyedOrdered{"b", 1}))
	assert.NoError(t, q.Enqueue(keyedOrdered{"c", 3}))

	v, err := q.RemoveMin()
	assert.NoError(t, err)
	assert.Equal(t, "b", v.key)
}
