package dict

import "fmt"

// Entry is an immutable key/value pair. Replacing a value in a Dictionary
// swaps the whole Entry; an Entry obtained earlier keeps the old value.
type Entry[K, V any] struct {
	key   K
	value V
}

// NewEntry pairs k with v.
func NewEntry[K, V any](k K, v V) Entry[K, V] {
	return Entry[K, V]{key: k, value: v}
}

// Key returns the entry key.
func (e Entry[K, V]) Key() K { return e.key }

// Value returns the entry value.
func (e Entry[K, V]) Value() V { return e.value }

// String renders the entry as "(key, value)".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.key, e.value)
}
