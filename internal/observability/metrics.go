package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_cadastro_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_cadastro_cache_hits_total",
			Help: "Number of cache lookups by outcome",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_cadastro_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// LoginAttempts counts logins by result (success, invalid, blocked)
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_cadastro_login_attempts_total",
			Help: "Number of login attempts",
		},
		[]string{"result"},
	)

	// AuditEvents counts audit events by resource and outcome
	AuditEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_cadastro_audit_events_total",
			Help: "Number of audit events handled by the audit worker",
		},
		[]string{"resource", "status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_cadastro_active_connections",
			Help: "Number of active connections",
		},
	)
)
