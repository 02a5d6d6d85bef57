// Package metrics declares the Prometheus collectors of the server browser.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "serverbrowser"

// Heartbeat outcomes.
const (
	OutcomeCreated   = "created"
	OutcomeRefreshed = "refreshed"
	OutcomeRemoved   = "removed"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
)

// Metrics groups every collector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	heartbeats  *prometheus.CounterVec
	unregisters *prometheus.CounterVec
	lists       *prometheus.CounterVec
	listed      prometheus.Gauge
	swept       prometheus.Counter
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		heartbeats: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "heartbeats_total",
			Help:      "Heartbeats received, by outcome.",
		}, []string{"outcome"}),
		unregisters: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unregisters_total",
			Help:      "Explicit unregistrations, by outcome.",
		}, []string{"outcome"}),
		lists: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lists_total",
			Help:      "Server list requests, by outcome.",
		}, []string{"outcome"}),
		listed: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "listed_servers",
			Help:      "Number of live servers returned by the last successful list.",
		}),
		swept: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swept_entries_total",
			Help:      "Expired entries reclaimed by the in-memory store sweeper.",
		}),
	}
}

func (m *Metrics) Heartbeat(outcome string) {
	if m == nil {
		return
	}
	m.heartbeats.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Unregister(outcome string) {
	if m == nil {
		return
	}
	m.unregisters.WithLabelValues(outcome).Inc()
}

// List records a list call; n is ignored when err is not nil.
func (m *Metrics) List(n int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.lists.WithLabelValues(OutcomeError).Inc()
		return
	}
	m.lists.WithLabelValues("ok").Inc()
	m.listed.Set(float64(n))
}

func (m *Metrics) Swept(n int) {
	if m == nil {
		return
	}
	m.swept.Add(float64(n))
}
