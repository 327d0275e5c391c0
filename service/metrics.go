package service

import (
	"strconv"
	"time"

	"mycoordinator/helpers"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is the instrumentation sink for the coordinator. Constructed once in
// cmd/main with an explicit registerer — no package-level state — and shared by the
// affinity manager, the locker callers and the command processor.
type Metrics struct {
	affinityOperations *prometheus.CounterVec
	affinityLatency    prometheus.Histogram
	commandsProcessed  *prometheus.CounterVec
	commandDuration    *prometheus.HistogramVec
	lockAcquisitions   *prometheus.CounterVec
}

// NewMetrics creates and registers all coordinator collectors on the given registerer.
// Panics on nil registerer or on duplicate registration (programming errors either way).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	helpers.NilPanic(reg, "service.metrics.go: registerer is required")

	m := &Metrics{
		affinityOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mycoordinator",
				Subsystem: "affinity",
				Name:      "operations_total",
				Help:      "Affinity operations by operation, status and whether an affinity existed.",
			},
			[]string{"operation", "status", "has_affinity"},
		),
		affinityLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "mycoordinator",
				Subsystem: "affinity",
				Name:      "lookup_duration_seconds",
				Help:      "Affinity lookup latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		commandsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mycoordinator",
				Subsystem: "commands",
				Name:      "processed_total",
				Help:      "Commands processed by type and status.",
			},
			[]string{"type", "status"},
		),
		commandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "mycoordinator",
				Subsystem: "commands",
				Name:      "processing_duration_seconds",
				Help:      "Command handler duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"type"},
		),
		lockAcquisitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mycoordinator",
				Subsystem: "lock",
				Name:      "acquisitions_total",
				Help:      "Distributed lock acquisitions by status.",
			},
			[]string{"status"},
		),
	}
	reg.MustRegister(m.affinityOperations, m.affinityLatency, m.commandsProcessed, m.commandDuration, m.lockAcquisitions)
	return m
}

// RecordAffinityOperation counts one affinity operation outcome.
func (m *Metrics) RecordAffinityOperation(operation, status string, hasAffinity bool) {
	m.affinityOperations.WithLabelValues(operation, status, strconv.FormatBool(hasAffinity)).Inc()
}

// RecordAffinityLookup observes one GetAffinity latency.
func (m *Metrics) RecordAffinityLookup(duration time.Duration) {
	m.affinityLatency.Observe(duration.Seconds())
}

// RecordCommand counts one processed command and observes its handler duration.
func (m *Metrics) RecordCommand(commandType, status string, duration time.Duration) {
	m.commandsProcessed.WithLabelValues(commandType, status).Inc()
	m.commandDuration.WithLabelValues(commandType).Observe(duration.Seconds())
}

// RecordLockAcquisition counts one lock acquisition outcome.
func (m *Metrics) RecordLockAcquisition(status string) {
	m.lockAcquisitions.WithLabelValues(status).Inc()
}
