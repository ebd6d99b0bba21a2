// Package observability holds the Prometheus collectors exposed on /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "courierhub"

// Dispatch outcomes.
const (
	OutcomeAssigned    = "assigned"
	OutcomeNoCandidate = "no_candidate"
	OutcomeFailed      = "failed"
)

var (
	DispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "dispatch_total", Help: "Dispatch attempts by outcome"},
		[]string{"outcome"},
	)
	DispatchLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dispatch_latency_seconds",
		Help:      "Time to rank candidates and commit an assignment",
		Buckets:   prometheus.DefBuckets,
	})
	DispatchScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dispatch_score",
		Help:      "Composite score of the courier that won the assignment",
		Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
	})

	OrderTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "order_transitions_total", Help: "Committed order status changes"},
		[]string{"status"},
	)
	ScanRedemptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "scan_redemptions_total", Help: "Scan token redemptions by result"},
		[]string{"result"},
	)
	LocationPingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "location_pings_total", Help: "Courier location pings by result"},
		[]string{"result"},
	)
	LedgerAmountTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "ledger_amount_total", Help: "Sum of ledger entries in minor units"},
		[]string{"kind"},
	)
	StaleCouriersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_couriers_total",
		Help:      "Couriers moved offline by the stale ping sweep",
	})
	LiveCouriers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "live_couriers",
		Help:      "Idle couriers with a known position at the last live listing",
	})
	TrackingSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "tracking_subscribers",
		Help:      "Open live tracking websocket connections",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
