// Package metrics defines the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts requests by method, route and status
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phishing_http_requests_total",
			Help: "Total HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration observes request latency by method and route
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "phishing_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// CampaignTransitions counts successful campaign status changes
	CampaignTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phishing_campaign_transitions_total",
			Help: "Campaign status transitions by target status",
		},
		[]string{"to"},
	)

	// EmailsProcessed counts email-sender outcomes: sent, retried, failed
	EmailsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phishing_emails_processed_total",
			Help: "Queued emails processed by outcome",
		},
		[]string{"outcome"},
	)

	// TrackingEvents counts tracked target interactions
	TrackingEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phishing_tracking_events_total",
			Help: "Tracked interactions by event type",
		},
		[]string{"event"},
	)

	// TargetsImported counts targets created by bulk import
	TargetsImported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "phishing_targets_imported_total",
			Help: "Targets created through bulk import",
		},
	)

	// JobRuns counts background job executions by job and result
	JobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phishing_job_runs_total",
			Help: "Background job runs by job name and result",
		},
		[]string{"job", "result"},
	)

	// WebsocketConnections tracks open notification sockets
	WebsocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "phishing_websocket_connections",
			Help: "Open notification websocket connections",
		},
	)
)
