package client

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type storeMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func newStoreMetrics(reg prometheus.Registerer) (*storeMetrics, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "loggateway",
			Subsystem: "store",
			Name:      "requests_total",
			Help:      "Outbound requests to the data store by action and status",
		},
		[]string{"action", "status"},
	)
	latency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "loggateway",
			Subsystem: "store",
			Name:      "request_duration_seconds",
			Help:      "Latency of outbound requests to the data store",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"action"},
	)
	if reg == nil {
		return &storeMetrics{requests: requests, latency: latency}, nil
	}

	var err error
	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}
	if latency, err = register(reg, latency); err != nil {
		return nil, err
	}
	return &storeMetrics{requests: requests, latency: latency}, nil
}

// register adds c to reg, reusing the collector already registered under
// the same descriptor.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *storeMetrics) observe(action string, status string, elapsed time.Duration) {
	m.requests.WithLabelValues(action, status).Inc()
	m.latency.WithLabelValues(action).Observe(elapsed.Seconds())
}
