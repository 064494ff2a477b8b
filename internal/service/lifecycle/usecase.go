package lifecycle

import (
	"context"
	"time"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/ports/dispatchtx"
)

// Result is the delivery and its assignment after a successful transition.
// Assignment is nil when the delivery had no active assignment (drift; the
// reconciler owns the repair).
type Result struct {
	Delivery   domain.Delivery
	Assignment *domain.Assignment
}

// Service moves deliveries along the lifecycle graph. Validation, the
// delivery write, the assignment mirror and the evidence row are committed as
// one unit; a rejected transition leaves no trace.
type Service struct {
	repo             txRunner
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates a new lifecycle Service.
func NewService(r txRunner, timeout time.Duration, logger logx.Logger) *Service {
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
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Advance applies requested to the delivery. evidenceRef is the opaque photo
// reference backing the transition; evidence-gated edges reject before any
// mutation when it is empty. Reaching DELIVERED or CANCELLED deactivates the
// assignment - the sole mechanism returning the courier to the pool.
func (s *Service) Advance(ctx context.Context, deliveryID int64, requested domain.Status, evidenceRef string) (Result, error) {
	if deliveryID <= 0 {
		return Result{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result Result

	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		d, err := tx.GetDeliveryForUpdate(ctx, deliveryID)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.ErrDeliveryNotFound
		}

		plan, err := domain.PlanTransition(d.Status, requested, evidenceRef != "")
		if err != nil {
			return err
		}

		a, err := tx.ActiveAssignmentByDeliveryForUpdate(ctx, deliveryID)
		if err != nil {
			return err
		}

		now := s.now()
		if err := tx.UpdateDeliveryStatus(ctx, deliveryID, plan.Next, now); err != nil {
			return err
		}

		if a != nil {
			active := !plan.Terminal
			if err := tx.UpdateAssignmentState(ctx, a.ID, plan.State, active, now); err != nil {
				return err
			}
			a.State = plan.State
			a.Active = active
			if plan.State == domain.StatePicked && a.PickedAt == nil {
				a.PickedAt = &now
			}
			if plan.Terminal && a.CompletedAt == nil {
				a.CompletedAt = &now
			}
		} else {
			s.logger.Warn("delivery has no active assignment",
				logx.Int64("delivery_id", deliveryID),
				logx.String("status", string(plan.Next)),
			)
		}

		if plan.Evidence {
			photo := &domain.EvidencePhoto{
				DeliveryID: deliveryID,
				Checkpoint: plan.Checkpoint,
				UploadedBy: domain.UploadedByCourier,
				PhotoRef:   evidenceRef,
				CreatedAt:  now,
			}
			if err := tx.InsertEvidencePhoto(ctx, photo); err != nil {
				return err
			}
		}

		d.Status = plan.Next
		switch plan.Next {
		case domain.StatusOnRoute:
			if d.PickedAt == nil {
				d.PickedAt = &now
			}
		case domain.StatusDelivered:
			if d.DeliveredAt == nil {
				d.DeliveredAt = &now
			}
		}

		result = Result{Delivery: *d, Assignment: a}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	s.logger.Info("delivery advanced",
		logx.String("event", "delivery_advanced"),
		logx.Int64("delivery_id", result.Delivery.ID),
		logx.String("status", string(result.Delivery.Status)),
	)
	if result.Assignment != nil && !result.Assignment.Active {
		s.logger.Info("courier released",
			logx.String("event", "courier_released"),
			logx.Int64("courier_id", result.Assignment.CourierID),
			logx.Int64("delivery_id", result.Delivery.ID),
		)
	}

	return result, nil
}
