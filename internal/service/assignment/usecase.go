package assignment

import (
	"context"
	"errors"
	"time"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/ports/dispatchtx"
)

// Service claims waiting jobs for couriers and answers the read surface
// derived from assignments. It is the only writer of new assignment rows.
type Service struct {
	repo             dispatchRepository
	operationTimeout time.Duration
	logger           logx.Logger
	conflicts        counter
	now              func() time.Time
}

// NewService creates a new assignment Service. conflicts may be nil.
func NewService(r dispatchRepository, timeout time.Duration, logger logx.Logger, conflicts counter) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		logger:           logger,
		conflicts:        conflicts,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Claim takes a WAITING delivery for a courier. The busy check, the status
// re-read and both writes run in one transaction: two concurrent claims for
// the same courier or the same delivery cannot both succeed.
func (s *Service) Claim(ctx context.Context, deliveryID, courierID int64) (domain.Assignment, error) {
	if deliveryID <= 0 || courierID <= 0 {
		return domain.Assignment{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.Assignment

	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		active, err := tx.ActiveAssignmentByCourierForUpdate(ctx, courierID)
		if err != nil {
			return err
		}
		if active != nil {
			return apperr.ErrCourierBusy
		}

		d, err := tx.GetDeliveryForUpdate(ctx, deliveryID)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.ErrDeliveryNotFound
		}
		if d.Status != domain.StatusWaiting {
			return apperr.ErrJobNotAvailable
		}

		now := s.now()
		if err := tx.MarkDeliveryAssigned(ctx, deliveryID, now); err != nil {
			return err
		}

		a := &domain.Assignment{
			DeliveryID: deliveryID,
			CourierID:  courierID,
			State:      domain.StateAssigned,
			Active:     true,
			AcceptedAt: now,
		}
		if err := tx.InsertAssignment(ctx, a); err != nil {
			return err
		}

		result = *a
		return nil
	})
	if err != nil {
		if s.conflicts != nil &&
			(errors.Is(err, apperr.ErrCourierBusy) || errors.Is(err, apperr.ErrJobNotAvailable)) {
			s.conflicts.Inc()
		}
		return domain.Assignment{}, err
	}

	s.logger.Info("job claimed",
		logx.String("event", "job_claimed"),
		logx.Int64("delivery_id", result.DeliveryID),
		logx.Int64("courier_id", result.CourierID),
		logx.Time("accepted_at", result.AcceptedAt),
	)

	return result, nil
}

// CurrentJob returns the courier's active assignment joined with its
// delivery, or nil when the courier is free.
func (s *Service) CurrentJob(ctx context.Context, courierID int64) (*domain.CurrentJob, error) {
	if courierID <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.CurrentJob(ctx, courierID)
}

// AvailableJobs returns all WAITING deliveries, oldest first.
func (s *Service) AvailableJobs(ctx context.Context) ([]domain.Delivery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.AvailableJobs(ctx)
}

// Reconcile deactivates the courier's assignments whose delivery already
// reached a terminal status. Safe to run repeatedly; returns the number of
// repaired rows.
func (s *Service) Reconcile(ctx context.Context, courierID int64) (int64, error) {
	if courierID <= 0 {
		return 0, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repaired, err := s.repo.ReconcileAssignments(ctx, &courierID, s.now())
	if err != nil {
		return 0, err
	}
	if repaired > 0 {
		s.logger.Warn("assignments reconciled",
			logx.String("event", "assignments_reconciled"),
			logx.Int64("courier_id", courierID),
			logx.Int64("repaired", repaired),
		)
	}
	return repaired, nil
}

// Sweep reconciles drifted assignments across all couriers. Used by the
// background worker.
func (s *Service) Sweep(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repaired, err := s.repo.ReconcileAssignments(ctx, nil, s.now())
	if err != nil {
		return 0, err
	}
	if repaired > 0 {
		s.logger.Warn("assignments reconciled",
			logx.String("event", "assignments_reconciled"),
			logx.Int64("repaired", repaired),
		)
	}
	return repaired, nil
}
