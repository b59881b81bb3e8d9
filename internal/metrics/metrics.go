// Package metrics defines the Prometheus collectors for the detector service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GRPCServerHandlingSeconds is a histogram for gRPC server request latencies.
	GRPCServerHandlingSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grpc_server_handling_seconds",
			Help:    "Histogram of response latency (seconds) of gRPC that had been application-level handled by the server.",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "code"},
	)

	// BatchSize tracks how many submissions each dispatched batch carried,
	// partitioned by what triggered the flush.
	BatchSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "batch_flush_size",
			Help:    "Histogram of coalesced batch sizes per flush reason.",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		},
		[]string{"modality", "reason"},
	)

	// BatchFailures counts batch-level backend failures.
	BatchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "batch_failures_total",
			Help: "Total number of batches that failed at the backend.",
		},
		[]string{"modality"},
	)

	// InferenceLatencySeconds is a histogram of backend call latency per batch.
	InferenceLatencySeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inference_latency_seconds",
			Help:    "Histogram of backend inference latency (seconds) per dispatched batch.",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"modality"},
	)

	// FetchFailures counts input resolution failures by error kind.
	FetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fetch_failures_total",
			Help: "Total number of failed input fetches by error kind.",
		},
		[]string{"modality", "kind"},
	)

	// CacheRequests counts verdict cache lookups by outcome.
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verdict_cache_requests_total",
			Help: "Total number of verdict cache lookups by outcome (hit or miss).",
		},
		[]string{"modality", "outcome"},
	)

	// HealthStatus is a gauge indicating the health status of the service.
	HealthStatus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "health_status",
			Help: "Health status of the service (1 = healthy, 0 = unhealthy).",
		},
	)
)

// RecordGRPCLatency records the latency of a gRPC method call.
func RecordGRPCLatency(method, code string, seconds float64) {
	GRPCServerHandlingSeconds.WithLabelValues(method, code).Observe(seconds)
}

// RecordBatchFlush records one dispatched batch.
func RecordBatchFlush(modality string, size int, reason string, seconds float64, failed bool) {
	BatchSize.WithLabelValues(modality, reason).Observe(float64(size))
	InferenceLatencySeconds.WithLabelValues(modality).Observe(seconds)
	if failed {
		BatchFailures.WithLabelValues(modality).Inc()
	}
}

// RecordFetchFailure records one failed input fetch.
func RecordFetchFailure(modality, kind string) {
	FetchFailures.WithLabelValues(modality, kind).Inc()
}

// RecordCacheLookup records one verdict cache lookup.
func RecordCacheLookup(modality string, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	CacheRequests.WithLabelValues(modality, outcome).Inc()
}

// SetHealthy sets the health status to healthy.
func SetHealthy() {
	HealthStatus.Set(1)
}

// SetUnhealthy sets the health status to unhealthy.
func SetUnhealthy() {
	HealthStatus.Set(0)
}
