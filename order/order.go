// Package order defines the total-order capability a dictionary uses to
// keep its keys sorted, plus a few ready-made comparators.
package order

import "cmp"

// Comparator is the minimal contract a key ordering must satisfy.
// Compare returns a negative number when a < b, zero when a == b and a
// positive number when a > b.
//
// The relation must be transitive and antisymmetric, and it must stay
// consistent for as long as a key is stored in a dictionary.
type Comparator[K any] interface {
	Compare(a, b K) int
}

// Func adapts a plain three-way comparison function to Comparator.
type Func[K any] func(a, b K) int

// Compare implements Comparator by calling f.
func (f Func[K]) Compare(a, b K) int { return f(a, b) }

type natural[K cmp.Ordered] struct{}

// Natural returns the ascending ordering of K as defined by cmp.Compare.
// NaN sorts before every other float, so float keys remain totally ordered.
func Natural[K cmp.Ordered]() Comparator[K] { return natural[K]{} }

func (natural[K]) Compare(a, b K) int { return cmp.Compare(a, b) }

type reverse[K any] struct{ c Comparator[K] }

// Reverse returns the inverse ordering of c: the largest key sorts first.
func Reverse[K any](c Comparator[K]) Comparator[K] {
	// Reversing twice yields the original comparator.
	if r, ok := c.(reverse[K]); ok {
		return r.c
	}
	return reverse[K]{c: c}
}

func (r reverse[K]) Compare(a, b K) int { return r.c.Compare(b, a) }

// By orders values of T by projecting them to a key of type K and
// comparing the projections with c. Useful for struct keys ordered by a field.
func By[T, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return Func[T](func(a, b T) int { return c.Compare(key(a), key(b)) })
}
