package dict

import "iter"

// Dictionary is an ordered key/value container. Entries are kept in
// ascending key order (as defined by Options.Order) at all times.
//
// Implementations are NOT safe for concurrent use; callers sharing a
// Dictionary between goroutines must synchronize externally.
//
// Boundary inserts (new minimum or maximum key) are O(1); every other
// lookup or structural change scans the chain and is O(n).
type Dictionary[K, V any] interface {
	// IsEmpty reports whether the dictionary holds no entries.
	IsEmpty() bool

	// Len returns the number of entries.
	Len() int

	// Find returns the value stored under k and a presence flag.
	Find(k K) (V, bool)

	// Insert stores k→v. If k was already present its entry is replaced and
	// the previous value is returned with replaced == true; the size is
	// unchanged in that case.
	Insert(k K, v V) (old V, replaced bool)

	// Remove deletes k and returns its value. The flag is false when the key
	// was absent (the dictionary is left untouched).
	Remove(k K) (V, bool)

	// MinEntry returns the entry with the smallest key.
	// Returns ErrEmptyDictionary if there are no entries.
	MinEntry() (Entry[K, V], error)

	// MaxEntry returns the entry with the largest key.
	// Returns ErrEmptyDictionary if there are no entries.
	MaxEntry() (Entry[K, V], error)

	// Iterator returns a bidirectional cursor seeded with the current
	// smallest and largest entries. It is valid only until the next Insert,
	// Remove or Clear.
	Iterator() Iterator[K, V]

	// All yields key/value pairs in ascending key order.
	All() iter.Seq2[K, V]

	// Backward yields key/value pairs in descending key order.
	Backward() iter.Seq2[K, V]

	// Entries returns a snapshot of all entries in ascending key order.
	// The slice is owned by the caller and unaffected by later mutation.
	Entries() []Entry[K, V]

	// Clear drops every entry.
	Clear()
}
