package app

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/metrics"
	"delivery-dispatch/internal/repository"
	"delivery-dispatch/internal/service/assignment"
)

type metricsOut struct {
	dig.Out

	RateLimitExceeded prometheus.Counter `name:"rate_limit_exceeded_total"`
	TxRetries         prometheus.Counter `name:"dispatch_tx_retries_total"`
	ClaimConflicts    prometheus.Counter `name:"dispatch_claim_conflicts_total"`
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, newMetrics)
}

func newMetrics() metricsOut {
	out := metricsOut{
		RateLimitExceeded: metrics.NewRateLimitExceededTotal(),
		TxRetries:         metrics.NewTxRetriesTotal(),
		ClaimConflicts:    metrics.NewClaimConflictsTotal(),
	}
	mustRegister(out.RateLimitExceeded, out.TxRetries, out.ClaimConflicts)
	return out
}

// mustRegister tolerates re-registration; a second container in the same
// process keeps the original collectors.
func mustRegister(cs ...prometheus.Collector) {
	for _, c := range cs {
		if err := prometheus.Register(c); err != nil {
			var dup prometheus.AlreadyRegisteredError
			if !errors.As(err, &dup) {
				panic(err)
			}
		}
	}
}

type retryingRepoIn struct {
	dig.In

	Repo    *repository.DispatchRepo
	Logger  logx.Logger
	Retries prometheus.Counter `name:"dispatch_tx_retries_total"`
}

func newRetryingRepo(in retryingRepoIn) *repository.RetryingDispatchRepo {
	return repository.NewRetryingDispatchRepo(in.Repo, in.Logger, in.Retries)
}

type assignmentIn struct {
	dig.In

	Repo      *repository.RetryingDispatchRepo
	Timeout   time.Duration
	Logger    logx.Logger
	Conflicts prometheus.Counter `name:"dispatch_claim_conflicts_total"`
}

func newAssignmentService(in assignmentIn) *assignment.Service {
	return assignment.NewService(in.Repo, in.Timeout, in.Logger, in.Conflicts)
}
