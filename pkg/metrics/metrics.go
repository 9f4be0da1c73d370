// Package metrics exposes harness activity in the Prometheus text
// exposition format (text/plain; version=0.0.4) without external
// dependencies. The harness state already keeps its own atomic counters,
// so every metric here reads a live value at scrape time instead of
// duplicating bookkeeping.
package metrics

import (
	"fmt"
	"net/http"
	"sort"
	"sync"
)

// MetricType represents the type of a metric.
type MetricType string

const (
	MetricTypeCounter MetricType = "counter"
	MetricTypeGauge   MetricType = "gauge"
)

// metric is a named value sampled at scrape time.
type metric struct {
	name string
	help string
	typ  MetricType
	fn   func() float64
}

// Registry holds metrics and renders the exposition document.
type Registry struct {
	mu      sync.RWMutex
	metrics map[string]*metric
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{metrics: make(map[string]*metric)}
}

// RegisterCounterFunc registers a counter whose value is read from fn at
// scrape time. fn must be monotonically non-decreasing and safe for
// concurrent use. Registering a duplicate name is an error.
func (r *Registry) RegisterCounterFunc(name, help string, fn func() float64) error {
	return r.register(&metric{name: name, help: help, typ: MetricTypeCounter, fn: fn})
}

// RegisterGaugeFunc registers a gauge whose value is read from fn at
// scrape time.
func (r *Registry) RegisterGaugeFunc(name, help string, fn func() float64) error {
	return r.register(&metric{name: name, help: help, typ: MetricTypeGauge, fn: fn})
}

func (r *Registry) register(m *metric) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.metrics[m.name]; exists {
		return fmt.Errorf("duplicate metric name: %s", m.name)
	}
	r.metrics[m.name] = m
	return nil
}

// Handler returns an http.Handler serving the exposition document.
func (r *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		r.mu.RLock()
		names := make([]string, 0, len(r.metrics))
		for name := range r.metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			m := r.metrics[name]
			fmt.Fprintf(w, "# HELP %s %s\n", m.name, m.help)
			fmt.Fprintf(w, "# TYPE %s %s\n", m.name, m.typ)
			fmt.Fprintf(w, "%s %v\n", m.name, m.fn())
		}
		r.mu.RUnlock()
	})
}
