// Package metrics exposes Prometheus collectors for PTY sessions.
//
// All methods are safe on a nil *Metrics so callers that run without
// metrics (the shared library, most tests) need no special casing.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ptyhost"

// Metrics holds all session collectors.
type Metrics struct {
	SessionsActive prometheus.Gauge
	SessionsOpened prometheus.Counter
	SpawnFailures  *prometheus.CounterVec
	SessionExits   *prometheus.CounterVec
	BytesRead      prometheus.Counter
	BytesWritten   prometheus.Counter
	IOErrors       *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of sessions currently held by the registry",
		}),
		SessionsOpened: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_opened_total",
			Help:      "Total number of sessions successfully spawned",
		}),
		SpawnFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spawn_failures_total",
			Help:      "Total number of failed spawns by failing stage",
		}, []string{"stage"}),
		SessionExits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_exits_total",
			Help:      "Total number of observed child exits by exit code",
		}, []string{"code"}),
		BytesRead: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_read_total",
			Help:      "Total bytes read from terminals",
		}),
		BytesWritten: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_written_total",
			Help:      "Total bytes written to terminals",
		}),
		IOErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "io_errors_total",
			Help:      "Total number of I/O errors by operation",
		}, []string{"op"}),
	}
}

// SessionOpened records a successful spawn.
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.SessionsOpened.Inc()
	m.SessionsActive.Inc()
}

// SessionRemoved records a handle being closed.
func (m *Metrics) SessionRemoved() {
	if m == nil {
		return
	}
	m.SessionsActive.Dec()
}

// SpawnFailed records a failed spawn.
func (m *Metrics) SpawnFailed(stage string) {
	if m == nil {
		return
	}
	m.SpawnFailures.WithLabelValues(stage).Inc()
}

// SessionExited records an observed child exit.
func (m *Metrics) SessionExited(code int32) {
	if m == nil {
		return
	}
	m.SessionExits.WithLabelValues(strconv.Itoa(int(code))).Inc()
}

// Read records bytes delivered by a read.
func (m *Metrics) Read(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.BytesRead.Add(float64(n))
}

// Written records bytes accepted by a write.
func (m *Metrics) Written(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.BytesWritten.Add(float64(n))
}

// IOError records a failed read, write, resize or kill.
func (m *Metrics) IOError(op string) {
	if m == nil {
		return
	}
	m.IOErrors.WithLabelValues(op).Inc()
}
