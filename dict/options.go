package dict

import (
	"github.com/rs/zerolog"

	"github.com/IvanBrykalov/ordlist/order"
)

// Metrics exposes dictionary-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	// Hit and Miss report the outcome of Find.
	Hit()
	Miss()
	// Insert reports a new node; Replace reports an in-place entry swap.
	Insert()
	Replace()
	// Remove reports an unlinked node.
	Remove()
	// Size reports the entry count after every structural change.
	Size(entries int)
}

// Options configures a dictionary. Zero values are safe except for Order,
// which New requires (NewOrdered fills it in for cmp.Ordered keys):
//   - nil Metrics => NoopMetrics
//   - nil Logger  => zerolog.Nop()
type Options[K, V any] struct {
	// Order is the total order over keys.
	Order order.Comparator[K]

	// Metrics receives Hit/Miss/Insert/Replace/Remove/Size signals.
	Metrics Metrics

	// Logger receives debug events about boundary changes
	// (new head/tail, unlink of a boundary node, min/max on empty).
	Logger *zerolog.Logger
}
