package tracker

import (
	"context"
	"time"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
)

// Service is the append-only courier position log. Writes never contend with
// the assignment engine; reads resolve through the current active assignment.
type Service struct {
	repo             locationRepository
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates a new tracker Service.
func NewService(r locationRepository, timeout time.Duration, logger logx.Logger) *Service {
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

// Record appends a position sample for a courier. deliveryID is optional and
// purely informative; no validation happens beyond the coordinate range.
func (s *Service) Record(ctx context.Context, courierID int64, coords domain.Coordinates, deliveryID *int64) error {
	if courierID <= 0 || !coords.Valid() {
		return apperr.ErrInvalid
	}
	if deliveryID != nil && *deliveryID <= 0 {
		return apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	sample := &domain.LocationSample{
		CourierID:  courierID,
		DeliveryID: deliveryID,
		Coords:     coords,
		RecordedAt: s.now(),
	}
	return s.repo.InsertSample(ctx, sample)
}

// LatestFor returns the newest position of the courier handling a delivery,
// or nil when the delivery has no active assignment or no samples exist.
func (s *Service) LatestFor(ctx context.Context, deliveryID int64) (*domain.LocationSample, error) {
	if deliveryID <= 0 {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := s.repo.ActiveAssignmentByDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}

	return s.repo.LatestByCourier(ctx, a.CourierID)
}
