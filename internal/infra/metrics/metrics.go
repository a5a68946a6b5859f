// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "courtcrowd"

var (
	PresenceTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "presence_transitions_total", Help: "Presence writes by kind, entry method and outcome"},
		[]string{"kind", "method", "outcome"},
	)
	GeofenceEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "geofence_events_total", Help: "Geofence events handled by the coordinator"},
		[]string{"type", "origin"},
	)
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "geofencing_sessions", Help: "Number of live geofencing sessions"})
	TrackedUsers   = promauto.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "background_tracked_users", Help: "Users with background fallback tracking enabled"})

	FixesIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "location_fixes_total", Help: "Background location fixes by ingestion result"},
		[]string{"result"},
	)
	EvaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "proximity_batch_seconds",
		Help:      "Duration of a background proximity evaluation batch",
		Buckets:   prometheus.DefBuckets,
	})
	IndexedCourts = promauto.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "indexed_courts", Help: "Courts currently held by the proximity index"})

	RadarRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "radar_requests_total", Help: "Radar API calls by operation and outcome"},
		[]string{"operation", "outcome"},
	)
	WebhookDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "radar_webhook_events_total", Help: "Radar webhook events by type and result"},
		[]string{"type", "result"},
	)

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

	DBQueryIssues = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "db_query_issues_total", Help: "Failed or slow Postgres queries"},
		[]string{"issue"},
	)
	DBPoolWaits = promauto.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "db_pool_waits_total", Help: "Connections waited for in the Postgres pool"})
	DBPoolInUse = promauto.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "db_pool_in_use", Help: "Postgres connections currently in use"})

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "notifications_total", Help: "Push notifications by outcome"},
		[]string{"outcome"},
	)
)

// Outcome label values.
const (
	OutcomeOK     = "ok"
	OutcomeNoop   = "noop"
	OutcomeFailed = "failed"
)
