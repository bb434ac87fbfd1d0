package order

import (
	"math"
	"strings"
	"testing"
)

// --- test doubles ---

type countingComparator struct {
	calls int
}

func (c *countingComparator) Compare(a, b int) int {
	c.calls++
	return a - b
}

type point struct {
	name string
	x    int
}

// --- tests ---

// Natural must follow the built-in ordering of the key type.
func TestNatural_Ints(t *testing.T) {
	t.Parallel()

	c := Natural[int]()
	if c.Compare(1, 2) >= 0 {
		t.Fatalf("1 must sort before 2")
	}
	if c.Compare(2, 1) <= 0 {
		t.Fatalf("2 must sort after 1")
	}
	if c.Compare(7, 7) != 0 {
		t.Fatalf("equal keys must compare as 0")
	}
}

// NaN must still be ordered (cmp.Compare puts it first).
func TestNatural_FloatNaN(t *testing.T) {
	t.Parallel()

	c := Natural[float64]()
	if c.Compare(math.NaN(), math.Inf(-1)) >= 0 {
		t.Fatalf("NaN must sort before -Inf")
	}
	if c.Compare(math.NaN(), math.NaN()) != 0 {
		t.Fatalf("NaN must compare equal to NaN")
	}
}

// Func must forward to the wrapped function.
func TestFunc_Forwards(t *testing.T) {
	t.Parallel()

	c := Func[string](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	if c.Compare("Alpha", "alpha") != 0 {
		t.Fatalf("case-folded keys must be equal")
	}
	if c.Compare("alpha", "Beta") >= 0 {
		t.Fatalf("alpha must sort before Beta when folded")
	}
}

// Reverse must invert the order and cancel itself out.
func TestReverse_InvertsAndCancels(t *testing.T) {
	t.Parallel()

	base := &countingComparator{}
	r := Reverse[int](base)
	if r.Compare(1, 2) <= 0 {
		t.Fatalf("reverse must sort 1 after 2")
	}
	if base.calls != 1 {
		t.Fatalf("reverse must delegate exactly once, got %d", base.calls)
	}

	rr := Reverse(r)
	if rr != Comparator[int](base) {
		t.Fatalf("double reverse must return the original comparator")
	}
}

// By must order structs by the projected field.
func TestBy_ProjectsKey(t *testing.T) {
	t.Parallel()

	c := By(func(p point) int { return p.x }, Natural[int]())
	a := point{name: "a", x: 10}
	b := point{name: "b", x: 3}
	if c.Compare(a, b) <= 0 {
		t.Fatalf("a (x=10) must sort after b (x=3)")
	}
	if c.Compare(a, point{name: "other", x: 10}) != 0 {
		t.Fatalf("points with equal x must compare equal")
	}
}
