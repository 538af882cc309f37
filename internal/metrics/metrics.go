// Package metrics exposes battle server counters to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/udisondev/turnbattle/internal/model"
)

const namespace = "turnbattle"

// Metrics holds the battle server collectors.
type Metrics struct {
	battles       *prometheus.CounterVec
	rounds        prometheus.Histogram
	compute       prometheus.Histogram
	rejected      *prometheus.CounterVec
	failures      prometheus.Counter
	stored        prometheus.Gauge
	catalogSkills prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		battles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "battles_total",
			Help:      "Resolved battles by result from side A's view.",
		}, []string{"result"}),
		rounds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "battle_rounds",
			Help:      "Rounds played per battle.",
			Buckets:   prometheus.LinearBuckets(1, 3, 10),
		}),
		compute: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "battle_compute_seconds",
			Help:      "Wall time spent resolving one battle.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "battle_requests_rejected_total",
			Help:      "Battle requests rejected before resolution.",
		}, []string{"reason"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "battle_failures_total",
			Help:      "Battles aborted by an internal error.",
		}),
		stored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "battle_records_stored",
			Help:      "Records held in the in-memory store.",
		}),
		catalogSkills: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_skills",
			Help:      "Skills in the current catalog snapshot.",
		}),
	}
	reg.MustRegister(m.battles, m.rounds, m.compute, m.rejected, m.failures, m.stored, m.catalogSkills)
	return m
}

// ObserveBattle records one resolved battle.
func (m *Metrics) ObserveBattle(result model.Result, rounds int, elapsed time.Duration) {
	m.battles.WithLabelValues(result.String()).Inc()
	m.rounds.Observe(float64(rounds))
	m.compute.Observe(elapsed.Seconds())
}

// Rejected counts a request refused with reason.
func (m *Metrics) Rejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

// Failed counts a battle aborted by a recovered panic.
func (m *Metrics) Failed() {
	m.failures.Inc()
}

// SetStored sets the number of records in the in-memory store.
func (m *Metrics) SetStored(n int) {
	m.stored.Set(float64(n))
}

// SetCatalogSkills sets the size of the current catalog.
func (m *Metrics) SetCatalogSkills(n int) {
	m.catalogSkills.Set(float64(n))
}
