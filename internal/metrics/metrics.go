// Package metrics records Prometheus metrics for API round trips.
package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bandwidth_client"

// Metrics holds the request collectors. It satisfies the transport Observer.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestErrors   *prometheus.CounterVec
}

// New creates the collectors and registers them with registerer. Collectors
// already registered by another client are reused.
func New(registerer prometheus.Registerer) (*Metrics, error) {
	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of API requests by method, resource and status code",
		},
		[]string{"method", "resource", "code"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "API request latency histogram",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"method", "resource"},
	)

	requestErrors := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_errors_total",
			Help:      "Total number of API requests that failed before a response was read",
		},
		[]string{"method", "resource"},
	)

	var err error

	m := &Metrics{}

	m.RequestsTotal, err = register(registerer, requestsTotal)
	if err != nil {
		return nil, err
	}

	m.RequestDuration, err = register(registerer, requestDuration)
	if err != nil {
		return nil, err
	}

	m.RequestErrors, err = register(registerer, requestErrors)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) (C, error) {
	if registerer == nil {
		return collector, nil
	}

	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	alreadyRegistered := prometheus.AlreadyRegisteredError{}
	if errors.As(err, &alreadyRegistered) {
		existing, ok := alreadyRegistered.ExistingCollector.(C)
		if ok {
			return existing, nil
		}
	}

	var zero C

	return zero, fmt.Errorf("registering metrics: %w", err)
}

// ObserveRequest records metrics for a completed request. A statusCode of
// zero means the request failed before a response was read.
func (m *Metrics) ObserveRequest(method, resource string, statusCode int, duration time.Duration, _ error) {
	if statusCode == 0 {
		m.RequestErrors.WithLabelValues(method, resource).Inc()
	} else {
		m.RequestsTotal.WithLabelValues(method, resource, strconv.Itoa(statusCode)).Inc()
	}

	m.RequestDuration.WithLabelValues(method, resource).Observe(duration.Seconds())
}
