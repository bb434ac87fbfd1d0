package dict

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/IvanBrykalov/ordlist/order"
)

// list is an ordered dictionary backed by a doubly linked chain of nodes
// (head = smallest key, tail = largest key).
type list[K, V any] struct {
	head *node[K, V]
	tail *node[K, V]
	size int

	cmp order.Comparator[K]
	opt Options[K, V]
	log zerolog.Logger
}

// New constructs an empty dictionary with the provided Options.
// Options.Order must be set; nil Metrics and Logger get no-op defaults.
func New[K, V any](opt Options[K, V]) Dictionary[K, V] {
	if opt.Order == nil {
		panic("dict: Order must be set")
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	log := zerolog.Nop()
	if opt.Logger != nil {
		log = opt.Logger.With().Str("component", "dict").Logger()
	}
	return &list[K, V]{cmp: opt.Order, opt: opt, log: log}
}

// NewOrdered is New for keys with a built-in ordering.
// A nil Options.Order defaults to order.Natural.
func NewOrdered[K cmp.Ordered, V any](opt Options[K, V]) Dictionary[K, V] {
	if opt.Order == nil {
		opt.Order = order.Natural[K]()
	}
	return New(opt)
}

// ---- Dictionary[K,V] implementation ----

// IsEmpty reports whether the dictionary holds no entries.
func (l *list[K, V]) IsEmpty() bool { return l.size == 0 }

// Len returns the number of entries.
func (l *list[K, V]) Len() int { return l.size }

// Find returns the value stored under k and a presence flag.
func (l *list[K, V]) Find(k K) (V, bool) {
	if n := l.findNode(k); n != nil {
		l.opt.Metrics.Hit()
		return n.entry.value, true
	}
	l.opt.Metrics.Miss()
	var zero V
	return zero, false
}

// Insert stores k→v, replacing (and returning) the previous value if k was present.
func (l *list[K, V]) Insert(k K, v V) (V, bool) {
	var zero V
	e := Entry[K, V]{key: k, value: v}

	switch {
	case l.head == nil:
		l.pushSole(e)
	case l.cmp.Compare(k, l.head.entry.key) < 0:
		l.pushFront(e)
	case l.cmp.Compare(k, l.tail.entry.key) > 0:
		l.pushBack(e)
	default:
		return l.insertInside(e)
	}
	return zero, false
}

// Remove unlinks k and returns its value.
func (l *list[K, V]) Remove(k K) (V, bool) {
	n := l.findNode(k)
	if n == nil {
		var zero V
		return zero, false
	}
	l.unlink(n)
	l.opt.Metrics.Remove()
	l.opt.Metrics.Size(l.size)
	return n.entry.value, true
}

// MinEntry returns the head entry or ErrEmptyDictionary.
func (l *list[K, V]) MinEntry() (Entry[K, V], error) {
	if l.head == nil {
		l.log.Debug().Str("op", "MinEntry").Msg("empty dictionary")
		return Entry[K, V]{}, errors.WithStack(ErrEmptyDictionary)
	}
	return l.head.entry, nil
}

// MaxEntry returns the tail entry or ErrEmptyDictionary.
func (l *list[K, V]) MaxEntry() (Entry[K, V], error) {
	if l.tail == nil {
		l.log.Debug().Str("op", "MaxEntry").Msg("empty dictionary")
		return Entry[K, V]{}, errors.WithStack(ErrEmptyDictionary)
	}
	return l.tail.entry, nil
}

// Iterator returns a cursor seeded with the current head and tail.
func (l *list[K, V]) Iterator() Iterator[K, V] {
	return newCursor(l.head, l.tail)
}

// All yields pairs from head to tail.
func (l *list[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.entry.key, n.entry.value) {
				return
			}
		}
	}
}

// Backward yields pairs from tail to head.
func (l *list[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.entry.key, n.entry.value) {
				return
			}
		}
	}
}

// Entries copies every entry into a new slice, smallest key first.
func (l *list[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.entry)
	}
	return out
}

// Clear drops the whole chain; nodes become unreachable at once.
func (l *list[K, V]) Clear() {
	l.head, l.tail = nil, nil
	l.size = 0
	l.opt.Metrics.Size(0)
}

// String renders the dictionary as "{k1:v1 k2:v2}".
func (l *list[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", n.entry.key, n.entry.value)
	}
	b.WriteByte('}')
	return b.String()
}

// ---- helpers ----

// findNode scans from head for k. Keys ascend, so the scan stops at the
// first key greater than k.
func (l *list[K, V]) findNode(k K) *node[K, V] {
	for n := l.head; n != nil; n = n.next {
		c := l.cmp.Compare(k, n.entry.key)
		if c == 0 {
			return n
		}
		if c < 0 {
			break
		}
	}
	return nil
}

// pushSole makes e the only node (head == tail).
func (l *list[K, V]) pushSole(e Entry[K, V]) {
	n := &node[K, V]{entry: e}
	l.head, l.tail = n, n
	l.created()
	l.log.Debug().Str("op", "insert").Msg("sole node")
}

// pushFront links e before the current head in O(1).
func (l *list[K, V]) pushFront(e Entry[K, V]) {
	n := &node[K, V]{entry: e, next: l.head}
	l.head.prev = n
	l.head = n
	l.created()
	l.log.Debug().Str("op", "insert").Msg("new head")
}

// pushBack links e after the current tail in O(1).
func (l *list[K, V]) pushBack(e Entry[K, V]) {
	n := &node[K, V]{entry: e, prev: l.tail}
	l.tail.next = n
	l.tail = n
	l.created()
	l.log.Debug().Str("op", "insert").Msg("new tail")
}

// insertInside handles head.key <= e.key <= tail.key: it either replaces the
// entry of an equal key or splices a node before the first greater key.
func (l *list[K, V]) insertInside(e Entry[K, V]) (V, bool) {
	var zero V
	for n := l.head; n != nil; n = n.next {
		c := l.cmp.Compare(e.key, n.entry.key)
		if c > 0 {
			continue
		}
		if c == 0 {
			old := n.entry.value
			n.entry = e
			l.opt.Metrics.Replace()
			return old, true
		}
		l.insertBefore(n, e)
		return zero, false
	}
	// Unreachable while keys ascend and e.key <= tail.key.
	l.pushBack(e)
	return zero, false
}

// insertBefore splices e immediately before at.
func (l *list[K, V]) insertBefore(at *node[K, V], e Entry[K, V]) {
	n := &node[K, V]{entry: e, prev: at.prev, next: at}
	if at.prev != nil {
		at.prev.next = n
	} else {
		l.head = n
	}
	at.prev = n
	l.created()
}

// created accounts for a freshly linked node.
func (l *list[K, V]) created() {
	l.size++
	l.opt.Metrics.Insert()
	l.opt.Metrics.Size(l.size)
}

// unlink detaches n and fixes head/tail, then clears n's links.
func (l *list[K, V]) unlink(n *node[K, V]) {
	switch {
	case l.head == n && l.tail == n:
		l.head, l.tail = nil, nil
		l.log.Debug().Str("op", "remove").Msg("last node")
	case l.head == n:
		l.head = n.next
		l.head.prev = nil
		l.log.Debug().Str("op", "remove").Msg("head advanced")
	case l.tail == n:
		l.tail = n.prev
		l.tail.next = nil
		l.log.Debug().Str("op", "remove").Msg("tail regressed")
	default:
		n.prev.next = n.next
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	l.size--
}
