package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "avalia_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "avalia_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// CacheMisses tracks cache misses
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "avalia_cache_misses_total",
			Help: "Number of cache misses",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "avalia_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// VerificationCodesSent tracks verification code deliveries
	VerificationCodesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "avalia_verification_codes_sent_total",
			Help: "Number of phone verification codes sent",
		},
		[]string{"status"},
	)

	// VerificationAttempts tracks verification code validation attempts
	VerificationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "avalia_verification_attempts_total",
			Help: "Number of phone verification attempts",
		},
		[]string{"result"},
	)

	// RatingsCreated tracks rating submissions
	RatingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "avalia_ratings_created_total",
			Help: "Number of ratings created",
		},
	)

	// SuggestionVotes tracks suggestion vote/unvote operations
	SuggestionVotes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "avalia_suggestion_votes_total",
			Help: "Number of suggestion vote operations",
		},
		[]string{"direction"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "avalia_active_connections",
			Help: "Number of active connections",
		},
	)

	// SuggestionStreamClients tracks connected suggestion feed subscribers
	SuggestionStreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "avalia_suggestion_stream_clients",
			Help: "Number of connected suggestion feed subscribers",
		},
	)
)
