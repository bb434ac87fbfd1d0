package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Forward and backward passes walk the full range once each.
func TestIterator_BothDirections(t *testing.T) {
	t.Parallel()

	d := newIntDict()
	for _, k := range []int{3, 1, 2} {
		d.Insert(k, string(rune('a'+k-1)))
	}
	it := d.Iterator()

	var fwd []Entry[int, string]
	for it.HasNext() {
		e, ok := it.Next()
		require.True(t, ok)
		fwd = append(fwd, e)
	}
	assert.Equal(t, []Entry[int, string]{NewEntry(1, "a"), NewEntry(2, "b"), NewEntry(3, "c")}, fwd)

	var bwd []int
	for it.HasPrev() {
		e, ok := it.Prev()
		require.True(t, ok)
		bwd = append(bwd, e.Key())
	}
	assert.Equal(t, []int{3, 2, 1}, bwd)
}

// Once exhausted, a pass stays exhausted.
func TestIterator_NotRestartable(t *testing.T) {
	t.Parallel()

	d := newIntDict()
	d.Insert(1, "a")
	it := d.Iterator()

	_, ok := it.Next()
	require.True(t, ok)
	assert.False(t, it.HasNext())
	_, ok = it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)

	// A fresh iterator walks again.
	e, ok := d.Iterator().Next()
	require.True(t, ok)
	assert.Equal(t, 1, e.Key())
}

// An iterator over an empty dictionary yields nothing in either direction.
func TestIterator_Empty(t *testing.T) {
	t.Parallel()

	it := newIntDict().Iterator()
	assert.False(t, it.HasNext())
	assert.False(t, it.HasPrev())
	_, ok := it.Next()
	assert.False(t, ok)
	_, ok = it.Prev()
	assert.False(t, ok)
}

// The cursor is bounded by the head/tail seeded at creation:
// a tail appended afterwards is outside its range.
func TestIterator_SeededBounds(t *testing.T) {
	t.Parallel()

	d := newIntDict()
	d.Insert(1, "a")
	d.Insert(2, "b")
	it := d.Iterator()
	d.Insert(3, "c") // new tail after seeding

	var keys []int
	for it.HasNext() {
		e, _ := it.Next()
		keys = append(keys, e.Key())
	}
	assert.Equal(t, []int{1, 2}, keys)
}
