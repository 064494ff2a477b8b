package dispatchtx

import (
	"context"
	"time"

	"delivery-dispatch/internal/domain"
)

// Repository is the transaction-scoped store surface used by claim and
// advance. Every decision read (busy check, status check) goes through it so
// that the read and the write happen under the same locks.
type Repository interface {
	GetDeliveryForUpdate(ctx context.Context, id int64) (*domain.Delivery, error)
	ActiveAssignmentByCourierForUpdate(ctx context.Context, courierID int64) (*domain.Assignment, error)
	ActiveAssignmentByDeliveryForUpdate(ctx context.Context, deliveryID int64) (*domain.Assignment, error)
	MarkDeliveryAssigned(ctx context.Context, id int64, at time.Time) error
	UpdateDeliveryStatus(ctx context.Context, id int64, status domain.Status, at time.Time) error
	InsertAssignment(ctx context.Context, a *domain.Assignment) error
	UpdateAssignmentState(ctx context.Context, id int64, state domain.AssignmentState, active bool, at time.Time) error
	InsertEvidencePhoto(ctx context.Context, p *domain.EvidencePhoto) error
}

// Runner is a transaction runner.
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
