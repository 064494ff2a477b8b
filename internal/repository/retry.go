package repository

import (
	"context"
	"errors"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/ports/dispatchtx"
)

type counter interface {
	Inc()
}

// RetryingRunner re-runs a whole transaction exactly once after a
// serialization failure or lock timeout. Anything else, including the second
// conflict, is returned to the caller unchanged. Owning the retry here keeps
// it out of the call sites.
type RetryingRunner struct {
	next    dispatchtx.Runner
	logger  logx.Logger
	retries counter
}

// NewRetryingRunner wraps a transaction runner with a single bounded retry.
func NewRetryingRunner(next dispatchtx.Runner, logger logx.Logger, retries counter) *RetryingRunner {
	if next == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &RetryingRunner{next: next, logger: logger, retries: retries}
}

// WithTx executes fn in a transaction, retrying once on conflict.
func (r *RetryingRunner) WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error {
	err := r.next.WithTx(ctx, fn)
	if err == nil || !errors.Is(err, apperr.ErrTransactionConflict) || ctx.Err() != nil {
		return err
	}

	if r.retries != nil {
		r.retries.Inc()
	}
	r.logger.Warn("transaction conflict, retrying once",
		logx.Any("err", err),
	)

	return r.next.WithTx(ctx, fn)
}

// RetryingDispatchRepo is a DispatchRepo whose transactions go through the
// retrying runner. Pool-level reads are inherited untouched.
type RetryingDispatchRepo struct {
	*DispatchRepo
	runner *RetryingRunner
}

// NewRetryingDispatchRepo wraps repo so its transactions retry once on
// conflict.
func NewRetryingDispatchRepo(repo *DispatchRepo, logger logx.Logger, retries counter) *RetryingDispatchRepo {
	return &RetryingDispatchRepo{
		DispatchRepo: repo,
		runner:       NewRetryingRunner(repo, logger, retries),
	}
}

// WithTx executes fn in a transaction, retrying once on conflict.
func (r *RetryingDispatchRepo) WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error {
	return r.runner.WithTx(ctx, fn)
}
