package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Viewer broadcaster metrics
var (
	ViewerConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "viewer_connections_active",
			Help: "Open viewer-count streams across all games",
		},
	)

	ViewerGamesActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "viewer_games_active",
			Help: "Games with at least one open viewer stream",
		},
	)

	ViewerBroadcastsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "viewer_broadcasts_total",
			Help: "Viewer count recomputations pushed to a game's subscribers",
		},
	)

	// ViewerWriteFailuresTotal is labelled by frame kind (count, ping).
	ViewerWriteFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viewer_write_failures_total",
			Help: "Failed writes to viewer streams by frame kind",
		},
		[]string{"kind"},
	)

	ViewerStreamsSweptTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "viewer_streams_swept_total",
			Help: "Streams dropped by the liveness sweep without an explicit unsubscribe",
		},
	)
)

// Backend API metrics
var (
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_requests_total",
			Help: "Requests to the tournament backend API by operation and status",
		},
		[]string{"operation", "status"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_request_duration_seconds",
			Help:    "Tournament backend API latency in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)
)
