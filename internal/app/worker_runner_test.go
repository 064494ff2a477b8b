package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/ports/dispatchtx"
	"delivery-dispatch/internal/service/assignment"
)

type fakeSweepRepo struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeSweepRepo) WithTx(context.Context, func(tx dispatchtx.Repository) error) error {
	return nil
}

func (f *fakeSweepRepo) CurrentJob(context.Context, int64) (*domain.CurrentJob, error) {
	return nil, nil
}

func (f *fakeSweepRepo) AvailableJobs(context.Context) ([]domain.Delivery, error) {
	return nil, nil
}

func (f *fakeSweepRepo) ReconcileAssignments(context.Context, *int64, time.Time) (int64, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return 0, nil
}

func (f *fakeSweepRepo) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func requireEventually(t *testing.T, timeout, tick time.Duration, condition func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		if condition() {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal(msg)
		}
		<-ticker.C
	}
}

func TestWorkerRunner_MustRun_NoPanicOnNil(t *testing.T) {
	r := &WorkerRunner{runFn: func(*dig.Container) error { return nil }}
	require.NotPanics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRunner_MustRun_NoPanicOnCanceled(t *testing.T) {
	r := &WorkerRunner{runFn: func(*dig.Container) error { return context.Canceled }}
	require.NotPanics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRunner_MustRun_PanicsOnOtherError(t *testing.T) {
	sentinel := errors.New("boom")
	r := &WorkerRunner{runFn: func(*dig.Container) error { return sentinel }}
	require.Panics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRun_ReturnsError_WhenConsumerNil(t *testing.T) {
	err := workerRun(context.Background(), nil, logx.Nop(), nil, nil, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "kafka consumer is nil")
}

func TestStartReconcileLoop_CallsSweep(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := &fakeSweepRepo{}
	svc := assignment.NewService(repo, time.Second, logx.Nop(), nil)

	startReconcileLoop(ctx, logx.Nop(), svc, 10*time.Millisecond)

	requireEventually(
		t,
		500*time.Millisecond,
		5*time.Millisecond,
		func() bool { return repo.Calls() > 0 },
		"expected the sweep to run at least once",
	)
	cancel()
}

func TestStartReconcileLoop_ZeroIntervalDisabled(t *testing.T) {
	t.Parallel()

	repo := &fakeSweepRepo{}
	svc := assignment.NewService(repo, time.Second, logx.Nop(), nil)

	startReconcileLoop(context.Background(), logx.Nop(), svc, 0)

	time.Sleep(30 * time.Millisecond)
	require.Zero(t, repo.Calls())
}
