// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Ingestion metrics
	ScoresIngested    prometheus.Counter
	ThresholdBreaches prometheus.Counter
	FeedErrors        *prometheus.CounterVec
	SignatureFailures prometheus.Counter

	// Subscription and coverage metrics
	SubscriptionsCreated *prometheus.CounterVec
	CoverageMinted       *prometheus.CounterVec

	// Protection metrics
	ProtectionsTriggered *prometheus.CounterVec

	// Claim metrics
	ClaimsInitiated prometheus.Counter
	ClaimVotes      *prometheus.CounterVec
	ClaimsResolved  *prometheus.CounterVec

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec

	// Health metrics
	LastSuccessfulIngestion prometheus.Gauge
	FeedConnected           prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "iris_engine"
	}

	return &Metrics{
		ScoresIngested: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "scores_ingested_total",
			Help:      "Total number of oracle risk scores ingested",
		}),
		ThresholdBreaches: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "threshold_breaches_total",
			Help:      "Total number of risk threshold breaches",
		}),
		FeedErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "feed_errors_total",
			Help:      "Total number of oracle feed errors by type",
		}, []string{"error_type"}),
		SignatureFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "signature_failures_total",
			Help:      "Total number of oracle signature verification failures",
		}),

		SubscriptionsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "subscription",
			Name:      "created_total",
			Help:      "Total number of subscriptions created by plan",
		}, []string{"plan"}),
		CoverageMinted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "coverage",
			Name:      "minted_total",
			Help:      "Total number of coverage tokens minted by tier",
		}, []string{"tier"}),

		ProtectionsTriggered: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "protection",
			Name:      "triggered_total",
			Help:      "Total number of protection actions dispatched by kind",
		}, []string{"action"}),

		ClaimsInitiated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "claims",
			Name:      "initiated_total",
			Help:      "Total number of claims initiated",
		}),
		ClaimVotes: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "claims",
			Name:      "votes_total",
			Help:      "Total number of governance votes by direction",
		}, []string{"direction"}),
		ClaimsResolved: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "claims",
			Name:      "resolved_total",
			Help:      "Total number of claims resolved by terminal status",
		}, []string{"status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"database", "operation"}),
		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_errors_total",
			Help:      "Total number of database query errors",
		}, []string{"database", "operation"}),

		LastSuccessfulIngestion: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_ingestion_timestamp",
			Help:      "Unix timestamp of last successful score ingestion",
		}),
		FeedConnected: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "feed_connected",
			Help:      "1 when the oracle feed is connected, 0 otherwise",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordScoreIngested increments ingestion counters.
func RecordScoreIngested(breached bool) {
	DefaultMetrics.ScoresIngested.Inc()
	if breached {
		DefaultMetrics.ThresholdBreaches.Inc()
	}
}

// RecordFeedError records an oracle feed error.
func RecordFeedError(errorType string) {
	DefaultMetrics.FeedErrors.WithLabelValues(errorType).Inc()
}

// RecordSignatureFailure increments the signature failure counter.
func RecordSignatureFailure() {
	DefaultMetrics.SignatureFailures.Inc()
}

// RecordSubscription increments the subscription counter for a plan.
func RecordSubscription(planID uint8) {
	DefaultMetrics.SubscriptionsCreated.WithLabelValues(planLabel(planID)).Inc()
}

// RecordCoverageMinted increments the coverage counter for a tier.
func RecordCoverageMinted(tier uint8) {
	DefaultMetrics.CoverageMinted.WithLabelValues(planLabel(tier)).Inc()
}

// RecordProtectionTriggered increments the protection counter for an action.
func RecordProtectionTriggered(action string) {
	DefaultMetrics.ProtectionsTriggered.WithLabelValues(action).Inc()
}

// RecordClaimInitiated increments the claims initiated counter.
func RecordClaimInitiated() {
	DefaultMetrics.ClaimsInitiated.Inc()
}

// RecordClaimVote increments the vote counter by direction.
func RecordClaimVote(approve bool) {
	direction := "reject"
	if approve {
		direction = "approve"
	}
	DefaultMetrics.ClaimVotes.WithLabelValues(direction).Inc()
}

// RecordClaimResolved increments the resolution counter by status.
func RecordClaimResolved(status string) {
	DefaultMetrics.ClaimsResolved.WithLabelValues(status).Inc()
}

// RecordDBQuery records database query metrics.
func RecordDBQuery(database, operation string, seconds float64, err error) {
	DefaultMetrics.DBQueryDuration.WithLabelValues(database, operation).Observe(seconds)
	if err != nil {
		DefaultMetrics.DBQueryErrors.WithLabelValues(database, operation).Inc()
	}
}

func planLabel(id uint8) string {
	return strconv.Itoa(int(id))
}
