// Package prom exports dictionary metrics as Prometheus collectors.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/IvanBrykalov/ordlist/dict"
)

// Adapter implements dict.Metrics and exports Prometheus counters/gauges.
// All Prometheus metric types are goroutine-safe, so one Adapter may be
// shared by several dictionaries (they will then add up).
type Adapter struct {
	finds   *prometheus.CounterVec
	writes  *prometheus.CounterVec
	removes prometheus.Counter
	entries prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		finds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "finds_total",
				Help:        "Find calls by result",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
		writes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "inserts_total",
				Help:        "Insert calls by outcome",
				ConstLabels: constLabels,
			},
			[]string{"outcome"},
		),
		removes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "removes_total",
			Help:        "Entries removed",
			ConstLabels: constLabels,
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "entries",
			Help:        "Number of resident entries",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.finds, a.writes, a.removes, a.entries)
	return a
}

// Hit counts a successful Find.
func (a *Adapter) Hit() { a.finds.WithLabelValues("hit").Inc() }

// Miss counts a Find for an absent key.
func (a *Adapter) Miss() { a.finds.WithLabelValues("miss").Inc() }

// Insert counts an Insert that created a node.
func (a *Adapter) Insert() { a.writes.WithLabelValues("created").Inc() }

// Replace counts an Insert that replaced an existing entry.
func (a *Adapter) Replace() { a.writes.WithLabelValues("replaced").Inc() }

// Remove counts an unlinked entry.
func (a *Adapter) Remove() { a.removes.Inc() }

// Size updates the entries gauge.
func (a *Adapter) Size(entries int) { a.entries.Set(float64(entries)) }

// Compile-time check: ensure Adapter implements dict.Metrics.
var _ dict.Metrics = (*Adapter)(nil)
