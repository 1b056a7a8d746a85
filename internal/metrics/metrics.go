// Package metrics exposes prometheus collectors for workspace activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for operation counters.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeInvalid  = "invalid"
)

// Recorder counts draft and store operations. The zero value is not usable;
// call New. A nil *Recorder ignores every call.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	finalized  prometheus.Counter
	rowsImport prometheus.Counter
	storeSize  prometheus.Histogram
}

// New builds a Recorder on its own registry, including the Go runtime and
// process collectors.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	r := &Recorder{
		registry: registry,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stability",
			Name:      "workspace_operations_total",
			Help:      "Draft editor and record store operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		finalized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stability",
			Name:      "records_finalized_total",
			Help:      "Batch records committed to a record store.",
		}),
		rowsImport: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stability",
			Name:      "schedule_rows_imported_total",
			Help:      "Schedule rows appended from CSV imports.",
		}),
		storeSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stability",
			Name:      "record_store_size",
			Help:      "Records held by a workspace store after each commit.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
	registry.MustRegister(
		r.operations,
		r.finalized,
		r.rowsImport,
		r.storeSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Operation counts one named operation with its outcome.
func (r *Recorder) Operation(name, outcome string) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(name, outcome).Inc()
}

// Finalized records a successful commit and the resulting store size.
func (r *Recorder) Finalized(storeLen int) {
	if r == nil {
		return
	}
	r.finalized.Inc()
	r.storeSize.Observe(float64(storeLen))
}

// RowsImported adds n imported schedule rows.
func (r *Recorder) RowsImported(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.rowsImport.Add(float64(n))
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
