package apiclient

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voltmate_client_requests_total",
		Help: "API requests issued by the client, by resource, method and status code.",
	}, []string{"resource", "method", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "voltmate_client_request_duration_seconds",
		Help:    "API request latency by resource.",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource"})

	refreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voltmate_client_token_refresh_total",
		Help: "Token refresh attempts by outcome.",
	}, []string{"outcome"})
)
