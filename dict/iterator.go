package dict

// Iterator is a bidirectional cursor over a dictionary's entries.
//
// The forward pass (HasNext/Next) starts at the smallest key captured when
// the iterator was created and ends after the largest; the backward pass
// (HasPrev/Prev) walks the same range in reverse. Each pass is consumed
// once and cannot be rewound.
//
// The cursor walks the live chain lazily. Inserting into or removing from
// the dictionary while an iterator is in use has undefined results; take
// Entries() first if you need to mutate while walking.
type Iterator[K, V any] interface {
	HasNext() bool
	Next() (Entry[K, V], bool)
	HasPrev() bool
	Prev() (Entry[K, V], bool)
}

type cursor[K, V any] struct {
	// Seeded boundaries.
	first *node[K, V]
	last  *node[K, V]

	// Next node to yield in each direction; nil once exhausted.
	fwd *node[K, V]
	bwd *node[K, V]
}

func newCursor[K, V any](head, tail *node[K, V]) *cursor[K, V] {
	return &cursor[K, V]{first: head, last: tail, fwd: head, bwd: tail}
}

func (c *cursor[K, V]) HasNext() bool { return c.fwd != nil }

// Next returns the next entry in ascending order, or false when the forward
// pass is exhausted.
func (c *cursor[K, V]) Next() (Entry[K, V], bool) {
	n := c.fwd
	if n == nil {
		return Entry[K, V]{}, false
	}
	if n == c.last {
		c.fwd = nil
	} else {
		c.fwd = n.next
	}
	return n.entry, true
}

func (c *cursor[K, V]) HasPrev() bool { return c.bwd != nil }

// Prev returns the next entry in descending order, or false when the
// backward pass is exhausted.
func (c *cursor[K, V]) Prev() (Entry[K, V], bool) {
	n := c.bwd
	if n == nil {
		return Entry[K, V]{}, false
	}
	if n == c.first {
		c.bwd = nil
	} else {
		c.bwd = n.prev
	}
	return n.entry, true
}
