// Package metrics holds the service's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PeerRequests counts outbound calls to peer services by outcome
	// (success, http_error, transport_error, rejected).
	PeerRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "peer_requests_total",
		Help: "Outbound peer service requests by outcome.",
	}, []string{"service", "outcome"})

	// HistoryFallbacks counts recommendation requests that fell back to
	// the local purchase history after an order-service failure.
	HistoryFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "history_fallbacks_total",
		Help: "Recommendation requests served from local purchase history.",
	})

	// RecommendationsServed counts recommendation responses by kind
	// (similar, user).
	RecommendationsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recommendations_served_total",
		Help: "Recommendation responses served by kind.",
	}, []string{"kind"})

	// RequestDuration observes HTTP handler latency.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status"})
)
