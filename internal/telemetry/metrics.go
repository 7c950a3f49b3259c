package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_http_requests_total",
		Help: "HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	DashboardComputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dashboard_compute_duration_seconds",
		Help:    "Time spent building one dashboard payload",
		Buckets: prometheus.DefBuckets,
	})

	DashboardErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_compute_errors_total",
		Help: "Dashboard computations that failed, by reason",
	}, []string{"reason"})

	SnapshotLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_snapshot_loads_total",
		Help: "Snapshot loads by source and result",
	}, []string{"source", "result"})

	SnapshotTransactions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dashboard_snapshot_transactions",
		Help: "Transactions in the active snapshot",
	})

	SnapshotLoadedAt = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dashboard_snapshot_loaded_timestamp_seconds",
		Help: "Unix time the active snapshot was loaded",
	})
)
