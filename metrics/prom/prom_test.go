package prom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanBrykalov/ordlist/dict"
)

// Dictionary operations must be reflected in the exported collectors.
func TestAdapter_CountsDictionaryOps(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg, "ordlist", "test", prometheus.Labels{"instance": "t"})

	d := dict.NewOrdered[string, int](dict.Options[string, int]{Metrics: m})
	d.Insert("a", 1)
	d.Insert("b", 2)
	d.Insert("a", 3)
	d.Find("a")
	d.Find("zz")
	d.Remove("b")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.finds.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.finds.WithLabelValues("miss")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.writes.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.writes.WithLabelValues("replaced")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.removes))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.entries))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, n, "finds{hit,miss} + inserts{created,replaced} + removes + entries")
}

// Registering twice on the same registry must fail loudly.
func TestAdapter_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	New(reg, "ordlist", "dup", nil)
	assert.Panics(t, func() { New(reg, "ordlist", "dup", nil) })
}
