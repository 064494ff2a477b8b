package handlers

import (
	"context"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/service/assignment"
	"delivery-dispatch/internal/service/lifecycle"
	"delivery-dispatch/internal/service/tracker"
)

type assignmentUsecase interface {
	Claim(ctx context.Context, deliveryID, courierID int64) (domain.Assignment, error)
	CurrentJob(ctx context.Context, courierID int64) (*domain.CurrentJob, error)
	AvailableJobs(ctx context.Context) ([]domain.Delivery, error)
	Reconcile(ctx context.Context, courierID int64) (int64, error)
}

// NewAssignmentUsecase wires an assignment Service into an assignmentUsecase.
func NewAssignmentUsecase(svc *assignment.Service) assignmentUsecase {
	return svc
}

type lifecycleUsecase interface {
	Advance(ctx context.Context, deliveryID int64, requested domain.Status, evidenceRef string) (lifecycle.Result, error)
}

// NewLifecycleUsecase wires a lifecycle Service into a lifecycleUsecase.
func NewLifecycleUsecase(svc *lifecycle.Service) lifecycleUsecase {
	return svc
}

type trackerUsecase interface {
	Record(ctx context.Context, courierID int64, coords domain.Coordinates, deliveryID *int64) error
	LatestFor(ctx context.Context, deliveryID int64) (*domain.LocationSample, error)
}

// NewTrackerUsecase wires a tracker Service into a trackerUsecase.
func NewTrackerUsecase(svc *tracker.Service) trackerUsecase {
	return svc
}
