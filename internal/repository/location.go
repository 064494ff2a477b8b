package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-dispatch/internal/domain"
)

// LocationRepo is the append-only courier position log.
type LocationRepo struct {
	db *pgxpool.Pool
}

// NewLocationRepo creates a new LocationRepo.
func NewLocationRepo(db *pgxpool.Pool) *LocationRepo {
	return &LocationRepo{db: db}
}

// InsertSample appends a position sample. No uniqueness, no cross-row locks.
func (r *LocationRepo) InsertSample(ctx context.Context, s *domain.LocationSample) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO rider_location (user_id, delivery_id, lat, lng, recorded_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, s.CourierID, s.DeliveryID, s.Coords.Lat, s.Coords.Lng, s.RecordedAt).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert location sample for courier %d: %w", s.CourierID, err)
	}
	return nil
}

// LatestByCourier returns the courier's most recent sample, or nil when the
// courier has never reported. The id tie-break makes last-write-wins
// deterministic for equal timestamps.
func (r *LocationRepo) LatestByCourier(ctx context.Context, courierID int64) (*domain.LocationSample, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, user_id, delivery_id, lat, lng, recorded_at
        FROM rider_location
        WHERE user_id = $1
        ORDER BY recorded_at DESC, id DESC
        LIMIT 1
    `, courierID)

	var s domain.LocationSample
	err := row.Scan(&s.ID, &s.CourierID, &s.DeliveryID, &s.Coords.Lat, &s.Coords.Lng, &s.RecordedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest location for courier %d: %w", courierID, err)
	}
	return &s, nil
}

// ActiveAssignmentByDelivery resolves the courier currently handling a
// delivery, without locking. Returns nil when there is no active assignment.
func (r *LocationRepo) ActiveAssignmentByDelivery(ctx context.Context, deliveryID int64) (*domain.Assignment, error) {
	row := r.db.QueryRow(ctx, `
        SELECT `+assignmentColumns+`
        FROM rider_assignment ra
        WHERE ra.delivery_id = $1 AND ra.active
    `, deliveryID)

	a, err := scanAssignment(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("active assignment for delivery %d: %w", deliveryID, err)
	}
	return a, nil
}
