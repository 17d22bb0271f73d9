package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	shipmentsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "auspost_rates",
			Subsystem: "kafka_consumer",
			Name:      "shipments_processed_total",
			Help:      "Total number of successfully processed shipment events",
		},
	)

	shipmentsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "auspost_rates",
			Subsystem: "kafka_consumer",
			Name:      "shipments_failed_total",
			Help:      "Total number of failed shipment event handling attempts",
		},
	)

	shipmentsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "auspost_rates",
			Subsystem: "kafka_consumer",
			Name:      "shipments_dlq_total",
			Help:      "Total number of shipment events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "auspost_rates",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)
)

var (
	rateRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "auspost_rates",
			Subsystem: "http",
			Name:      "rate_requests_total",
			Help:      "Total number of rate calculation requests",
		},
		[]string{"status"},
	)

	rateRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "auspost_rates",
			Subsystem: "http",
			Name:      "rate_request_duration_seconds",
			Help:      "Histogram of rate calculation request durations",
			Buckets:   prometheus.DefBuckets,
		},
	)

	rateRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "auspost_rates",
			Subsystem: "http",
			Name:      "rate_requests_in_progress",
			Help:      "Number of in-progress rate calculation requests",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		shipmentsProcessed,
		shipmentsFailed,
		shipmentsDLQ,
		commitErrors,

		rateRequestTotal,
		rateRequestDuration,
		rateRequestsInProgress,
	)
}
