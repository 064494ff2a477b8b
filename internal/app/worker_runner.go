package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/service/assignment"
	"delivery-dispatch/internal/transport/kafka"
)

type reconcileInterval time.Duration

// WorkerRunner runs the job-intake consumer and the reconcile sweep
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun starts the worker using the provided DI container
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	pool *pgxpool.Pool,
	logger logx.Logger,
	consumer *kafka.Consumer,
	svc *assignment.Service,
	interval reconcileInterval,
) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: worker container misconfigured")
	}
	defer closeWorker(pool, logger, consumer)

	startReconcileLoop(ctx, logger, svc, time.Duration(interval))

	logger.Info("dispatch-worker started")
	return consumer.Run(ctx)
}

// startReconcileLoop periodically repairs assignments that drifted out of
// sync with their delivery status.
func startReconcileLoop(ctx context.Context, logger logx.Logger, svc *assignment.Service, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := svc.Sweep(ctx); err != nil {
					logger.Error("reconcile sweep failed", logx.Any("err", err))
				}
			}
		}
	}()
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, kafkaConsumer *kafka.Consumer) {
	if kafkaConsumer != nil {
		if err := kafkaConsumer.Close(); err != nil {
			logger.Error("kafka close error", logx.Any("err", err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
