// Package storage provides token holders and the in-memory token store.
package storage

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes store activity in Prometheus format.
//
// A nil *Metrics is valid and records nothing, so the store can call
// record methods unconditionally.
type Metrics struct {
	registry *prometheus.Registry

	stored  prometheus.Counter
	revoked prometheus.Counter
	expired prometheus.Counter
	lookups *prometheus.CounterVec
	active  prometheus.Gauge
}

// NewMetrics creates a metrics registry for one store.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		stored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "authkit",
			Subsystem: "store",
			Name:      "tokens_stored_total",
			Help:      "Total number of tokens stored.",
		}),
		revoked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "authkit",
			Subsystem: "store",
			Name:      "tokens_revoked_total",
			Help:      "Total number of tokens revoked.",
		}),
		expired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "authkit",
			Subsystem: "store",
			Name:      "tokens_expired_total",
			Help:      "Total number of tokens purged after expiry.",
		}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "authkit",
			Subsystem: "store",
			Name:      "lookups_total",
			Help:      "Token lookups by result.",
		}, []string{"result"}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "authkit",
			Subsystem: "store",
			Name:      "tokens_active",
			Help:      "Current number of stored tokens.",
		}),
	}

	m.registry.MustRegister(m.stored, m.revoked, m.expired, m.lookups, m.active)
	return m
}

// Handler returns an HTTP handler serving the metrics in Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) recordStored() {
	if m == nil {
		return
	}
	m.stored.Inc()
}

func (m *Metrics) recordRevoked() {
	if m == nil {
		return
	}
	m.revoked.Inc()
}

func (m *Metrics) recordExpired() {
	if m == nil {
		return
	}
	m.expired.Inc()
}

func (m *Metrics) recordLookup(result string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(result).Inc()
}

func (m *Metrics) setActive(n int) {
	if m == nil {
		return
	}
	m.active.Set(float64(n))
}
