package dict

// node is a cell of the doubly linked chain owned by a dictionary.
// Keys ascend from head to tail.
type node[K, V any] struct {
	entry Entry[K, V]

	// Chain links; nil at the boundaries.
	prev *node[K, V]
	next *node[K, V]
}
