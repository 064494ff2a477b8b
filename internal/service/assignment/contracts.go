//go:generate mockgen -source=contracts.go -destination=usecase_mocks_test.go -package=assignment

package assignment

import (
	"context"
	"time"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/ports/dispatchtx"
)

type dispatchRepository interface {
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
	CurrentJob(ctx context.Context, courierID int64) (*domain.CurrentJob, error)
	AvailableJobs(ctx context.Context) ([]domain.Delivery, error)
	ReconcileAssignments(ctx context.Context, courierID *int64, now time.Time) (int64, error)
}

type counter interface {
	Inc()
}
