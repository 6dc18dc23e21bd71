package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Entry metrics
	EntriesCreated *prometheus.CounterVec
	EntriesDeleted prometheus.Counter
	EntryAmount    prometheus.Histogram

	// Store metrics
	StoreErrors *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		EntriesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pennyledger_entries_created_total",
				Help: "Total number of entries created by type",
			},
			[]string{"type"},
		),
		EntriesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pennyledger_entries_deleted_total",
			Help: "Total number of entries deleted",
		}),
		EntryAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pennyledger_entry_amount",
			Help:    "Entry amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),
		StoreErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pennyledger_store_errors_total",
				Help: "Total number of store errors by operation",
			},
			[]string{"operation"},
		),
	}
}
