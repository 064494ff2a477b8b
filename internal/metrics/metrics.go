package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewTxRetriesTotal returns a Prometheus counter for the number of store transactions re-run after a conflict
func NewTxRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_tx_retries_total",
		Help: "Total number of store transactions re-run after a serialization conflict or lock timeout",
	})
}

// NewClaimConflictsTotal returns a Prometheus counter for claims rejected because of exclusivity or availability
func NewClaimConflictsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_claim_conflicts_total",
		Help: "Total number of claims rejected because the courier was busy or the job was taken",
	})
}
