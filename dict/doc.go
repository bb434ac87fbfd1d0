// Package dict provides a generic ordered dictionary backed by a doubly
// linked chain of nodes.
//
// Design
//
//   - Ordering: keys are kept strictly ascending under an order.Comparator
//     supplied through Options.Order. NewOrdered defaults it to the natural
//     ordering for cmp.Ordered keys. Keys are unique; inserting an existing
//     key replaces its entry and returns the previous value.
//
//   - Storage: head holds the smallest key, tail the largest. Inserting a new
//     minimum or maximum is O(1); every other lookup or structural change is
//     a linear scan that stops as soon as it passes the target key.
//
//   - Entries: Entry values are immutable. A replacement swaps the node's
//     Entry, so entries handed out earlier keep their old value.
//
//   - Errors: only MinEntry/MaxEntry fail, with ErrEmptyDictionary on an
//     empty dictionary. Absent keys are reported through a boolean flag.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Insert/Replace/Remove/Size
//     signals. NoopMetrics is the default; metrics/prom exports Prometheus
//     collectors.
//
//   - Logging: Options.Logger (zerolog) receives debug events for boundary
//     changes. Nil means no logging.
//
// Basic usage
//
//	d := dict.NewOrdered[int, string](dict.Options[int, string]{})
//	d.Insert(5, "e")
//	d.Insert(2, "b")
//	if old, replaced := d.Insert(2, "B"); replaced {
//	    _ = old // "b"
//	}
//	for k, v := range d.All() {
//	    fmt.Println(k, v) // 2 B, then 5 e
//	}
//
// Custom ordering
//
//	d := dict.New[string, int](dict.Options[string, int]{
//	    Order: order.Reverse(order.Natural[string]()),
//	})
//
// Bidirectional cursor
//
//	it := d.Iterator()
//	for it.HasNext() {
//	    e, _ := it.Next()
//	    _ = e.Key()
//	}
//
// Thread-safety
//
// A Dictionary is not safe for concurrent use. Iterators are valid only
// while the dictionary is not mutated.
package dict
