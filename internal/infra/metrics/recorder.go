// Package metrics exposes reservation outcomes to prometheus.
package metrics

import (
	"net/http"

	"lease-engine/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lease_engine"

type PrometheusRecorder struct {
	registry    *prometheus.Registry
	operations  *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

var _ shared.Recorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder registers its collectors on a private registry so
// several instances can coexist in tests.
func NewPrometheusRecorder() *PrometheusRecorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &PrometheusRecorder{
		registry: reg,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_operations_total",
			Help:      "Reservation operations by kind, operation and outcome.",
		}, []string{"kind", "operation", "outcome"}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeper_transitions_total",
			Help:      "Status transitions applied by the expiry sweeper.",
		}, []string{"kind", "transition"}),
	}
}

func (r *PrometheusRecorder) Reservation(kind, operation, outcome string) {
	r.operations.WithLabelValues(kind, operation, outcome).Inc()
}

func (r *PrometheusRecorder) Transition(kind, transition string, count int) {
	if count <= 0 {
		return
	}
	r.transitions.WithLabelValues(kind, transition).Add(float64(count))
}

func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}
