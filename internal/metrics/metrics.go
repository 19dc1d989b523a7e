// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

// Package metrics exposes Prometheus instrumentation for the content API and
// the admin client: HTTP latency and throughput, reorder and resync
// outcomes, store operations, and remote circuit breaker state.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/contentforge/contentforge/internal/ordering"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Ordering metrics
	ReorderTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reorder_operations_total",
			Help: "Total reorder persist attempts by collection and outcome",
		},
		[]string{"collection", "outcome"}, // outcome: "success", "failure"
	)

	ResyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resync_operations_total",
			Help: "Total completed full resyncs after failed persists",
		},
		[]string{"collection"},
	)

	// Store metrics
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total BadgerDB operations by kind and collection",
		},
		[]string{"operation", "collection"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Total BadgerDB operation failures",
		},
		[]string{"operation", "collection"},
	)

	// Remote client circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// RecordAPIRequest records one served API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordReorder records a reorder persist attempt outcome. A resync is
// counted only when the follow-up refetch actually replaced local state;
// a failed refetch leaves the optimistic state in place and counts as a
// plain failure.
func RecordReorder(collection string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
		if !errors.Is(err, ordering.ErrResyncFailed) {
			ResyncTotal.WithLabelValues(collection).Inc()
		}
	}
	ReorderTotal.WithLabelValues(collection, outcome).Inc()
}

// RecordStoreOp records one store operation.
func RecordStoreOp(operation, collection string, err error) {
	StoreOperations.WithLabelValues(operation, collection).Inc()
	if err != nil {
		StoreErrors.WithLabelValues(operation, collection).Inc()
	}
}
