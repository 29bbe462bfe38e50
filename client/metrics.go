package client

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	clienterrors "github.com/gymtrack/gymtrack-web/client/internal/errors"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gymtrack_client",
			Name:      "requests_total",
			Help:      "API requests by method and outcome.",
		},
		[]string{"method", "outcome"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gymtrack_client",
			Name:      "request_failures_total",
			Help:      "Failed API requests by method and failure kind.",
		},
		[]string{"method", "kind"},
	)
)

// metricsObserver feeds request outcomes from the core into the counters above.
type metricsObserver struct{}

func (metricsObserver) Observe(method string, err error) {
	if err == nil {
		requestsTotal.WithLabelValues(method, "success").Inc()
		return
	}
	requestsTotal.WithLabelValues(method, "failure").Inc()
	requestFailuresTotal.WithLabelValues(method, failureKind(err)).Inc()
}

func failureKind(err error) string {
	if k, ok := clienterrors.KindOf(err); ok {
		return strings.ToLower(k.String())
	}
	return "other"
}
