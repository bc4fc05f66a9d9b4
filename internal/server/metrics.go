// Package server exposes the kernel's operational metrics over HTTP: a
// Prometheus text-exposition endpoint plus a liveness probe, fronted by a
// small set of security-hardening defaults.
package server

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the Prometheus collectors for kernel operations. It uses a
// private registry rather than the global default so that multiple Metrics
// instances (e.g. in tests) never collide on collector registration.
type Metrics struct {
	registry *prometheus.Registry

	OperationsTotal   *prometheus.CounterVec
	OperationErrors   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	DigitsProcessed   *prometheus.CounterVec
	HeapAlloc         prometheus.Gauge
	HeapObjects       prometheus.Gauge
}

// NewMetrics creates and registers the kernel's metric collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		OperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bigcalc",
			Name:      "operations_total",
			Help:      "Number of kernel operations completed, by operation name.",
		}, []string{"operation"}),
		OperationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bigcalc",
			Name:      "operation_errors_total",
			Help:      "Number of kernel operations that returned an error, by operation name and error kind.",
		}, []string{"operation", "kind"}),
		OperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bigcalc",
			Name:      "operation_duration_seconds",
			Help:      "Wall-clock duration of kernel operations, by operation name.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		DigitsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bigcalc",
			Name:      "digits_processed_total",
			Help:      "Sum of operand digit counts processed, by operation name.",
		}, []string{"operation"}),
		HeapAlloc: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bigcalc",
			Name:      "heap_alloc_bytes",
			Help:      "Bytes of heap memory in use, as of the last snapshot.",
		}),
		HeapObjects: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bigcalc",
			Name:      "heap_objects",
			Help:      "Number of allocated heap objects, as of the last snapshot.",
		}),
	}

	reg.MustRegister(
		m.OperationsTotal,
		m.OperationErrors,
		m.OperationDuration,
		m.DigitsProcessed,
		m.HeapAlloc,
		m.HeapObjects,
	)
	return m
}

// ObserveOperation records the outcome of one kernel operation.
func (m *Metrics) ObserveOperation(operation string, seconds float64, digits int, errKind string) {
	m.OperationsTotal.WithLabelValues(operation).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(seconds)
	if digits > 0 {
		m.DigitsProcessed.WithLabelValues(operation).Add(float64(digits))
	}
	if errKind != "" {
		m.OperationErrors.WithLabelValues(operation, errKind).Inc()
	}
}

// SetMemorySnapshot updates the heap gauges from a runtime memory reading.
func (m *Metrics) SetMemorySnapshot(heapAlloc, heapObjects uint64) {
	m.HeapAlloc.Set(float64(heapAlloc))
	m.HeapObjects.Set(float64(heapObjects))
}

// WritePrometheus encodes all registered metrics in the Prometheus text
// exposition format to w.
func (m *Metrics) WritePrometheus(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

// Registry returns the underlying Prometheus registry, for use with
// promhttp.HandlerFor in tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
