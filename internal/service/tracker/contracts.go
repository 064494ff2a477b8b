//go:generate mockgen -source=contracts.go -destination=usecase_mocks_test.go -package=tracker

package tracker

import (
	"context"

	"delivery-dispatch/internal/domain"
)

type locationRepository interface {
	InsertSample(ctx context.Context, s *domain.LocationSample) error
	LatestByCourier(ctx context.Context, courierID int64) (*domain.LocationSample, error)
	ActiveAssignmentByDelivery(ctx context.Context, deliveryID int64) (*domain.Assignment, error)
}
