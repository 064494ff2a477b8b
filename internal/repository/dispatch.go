package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/ports/dispatchtx"
)

// Names of the partial unique indexes that arbitrate concurrent claims.
const (
	constraintActiveCourier  = "rider_assignment_one_active_per_courier"
	constraintActiveDelivery = "rider_assignment_one_active_per_delivery"
)

// DispatchRepo persists deliveries, assignments and evidence photos.
type DispatchRepo struct {
	db *pgxpool.Pool
}

// NewDispatchRepo creates a new DispatchRepo.
func NewDispatchRepo(db *pgxpool.Pool) *DispatchRepo {
	return &DispatchRepo{db: db}
}

// WithTx opens a transaction and executes fn within it. Conflicting
// transactions surface as apperr.ErrTransactionConflict so the caller can
// retry the whole operation.
func (r *DispatchRepo) WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", apperr.ErrStoreUnavailable)
	}

	// rollback on panic before re-raising
	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		if IsConflict(err) {
			return fmt.Errorf("tx aborted: %w", apperr.ErrTransactionConflict)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		if IsConflict(err) {
			return fmt.Errorf("commit tx: %w", apperr.ErrTransactionConflict)
		}
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// TxRepo is the transaction-scoped store surface.
type TxRepo struct {
	tx pgx.Tx
}

const deliveryColumns = `
	d.id, d.sender_id, d.receiver_id, d.pickup_address_id, d.dropoff_address_id,
	d.status, d.note, COALESCE(d.submission_ref, ''), d.requested_at,
	d.assigned_at, d.picked_at, d.delivered_at`

func scanDelivery(row pgx.Row) (*domain.Delivery, error) {
	var d domain.Delivery
	err := row.Scan(
		&d.ID, &d.SenderID, &d.ReceiverID, &d.PickupAddressID, &d.DropoffAddressID,
		&d.Status, &d.Note, &d.SubmissionRef, &d.RequestedAt,
		&d.AssignedAt, &d.PickedAt, &d.DeliveredAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

const assignmentColumns = `
	ra.id, ra.delivery_id, ra.user_id, ra.state, ra.active,
	ra.accepted_at, ra.picked_at, ra.completed_at`

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var a domain.Assignment
	err := row.Scan(
		&a.ID, &a.DeliveryID, &a.CourierID, &a.State, &a.Active,
		&a.AcceptedAt, &a.PickedAt, &a.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetDeliveryForUpdate reads a delivery under a row lock. Returns nil when
// the delivery does not exist.
func (r *TxRepo) GetDeliveryForUpdate(ctx context.Context, id int64) (*domain.Delivery, error) {
	row := r.tx.QueryRow(ctx, `
        SELECT `+deliveryColumns+`
        FROM delivery d
        WHERE d.id = $1
        FOR UPDATE
    `, id)

	d, err := scanDelivery(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery %d for update: %w", id, err)
	}
	return d, nil
}

// ActiveAssignmentByCourierForUpdate reads the courier's active assignment
// under a row lock. Returns nil when the courier is free. There is no row to
// lock for a free courier; the partial unique index on (user_id) WHERE active
// arbitrates concurrent claims in that case.
func (r *TxRepo) ActiveAssignmentByCourierForUpdate(ctx context.Context, courierID int64) (*domain.Assignment, error) {
	row := r.tx.QueryRow(ctx, `
        SELECT `+assignmentColumns+`
        FROM rider_assignment ra
        WHERE ra.user_id = $1 AND ra.active
        FOR UPDATE
    `, courierID)

	a, err := scanAssignment(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("active assignment for courier %d: %w", courierID, err)
	}
	return a, nil
}

// ActiveAssignmentByDeliveryForUpdate reads the delivery's active assignment
// under a row lock. Returns nil when there is none.
func (r *TxRepo) ActiveAssignmentByDeliveryForUpdate(ctx context.Context, deliveryID int64) (*domain.Assignment, error) {
	row := r.tx.QueryRow(ctx, `
        SELECT `+assignmentColumns+`
        FROM rider_assignment ra
        WHERE ra.delivery_id = $1 AND ra.active
        FOR UPDATE
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

// MarkDeliveryAssigned moves a WAITING delivery to ASSIGNED and stamps the
// assignment time. The status predicate keeps the write honest even if the
// caller skipped the locked re-read.
func (r *TxRepo) MarkDeliveryAssigned(ctx context.Context, id int64, at time.Time) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE delivery
        SET status = $2, assigned_at = $3
        WHERE id = $1 AND status = $4
    `, id, domain.StatusAssigned, at, domain.StatusWaiting)
	if err != nil {
		return fmt.Errorf("mark delivery %d assigned: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrJobNotAvailable
	}
	return nil
}

// UpdateDeliveryStatus sets the delivery status and stamps picked_at /
// delivered_at on the first pass through the matching status.
func (r *TxRepo) UpdateDeliveryStatus(ctx context.Context, id int64, status domain.Status, at time.Time) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE delivery
        SET status = $2,
            picked_at    = CASE WHEN $2 = 'ON_ROUTE'  AND picked_at    IS NULL THEN $3 ELSE picked_at    END,
            delivered_at = CASE WHEN $2 = 'DELIVERED' AND delivered_at IS NULL THEN $3 ELSE delivered_at END
        WHERE id = $1
    `, id, status, at)
	if err != nil {
		return fmt.Errorf("update delivery %d status: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrDeliveryNotFound
	}
	return nil
}

// InsertAssignment inserts a new active assignment. Unique-index violations
// are translated into the claim conflict they represent.
func (r *TxRepo) InsertAssignment(ctx context.Context, a *domain.Assignment) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO rider_assignment (delivery_id, user_id, state, active, accepted_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, a.DeliveryID, a.CourierID, a.State, a.Active, a.AcceptedAt).Scan(&a.ID)
	if err != nil {
		if IsDuplicate(err) {
			switch ConstraintName(err) {
			case constraintActiveCourier:
				return apperr.ErrCourierBusy
			case constraintActiveDelivery:
				return apperr.ErrJobNotAvailable
			}
		}
		return fmt.Errorf("insert assignment for delivery %d: %w", a.DeliveryID, err)
	}
	return nil
}

// UpdateAssignmentState moves an assignment to the given state, stamping
// picked_at on PICKED and completed_at when the assignment is deactivated.
func (r *TxRepo) UpdateAssignmentState(ctx context.Context, id int64, state domain.AssignmentState, active bool, at time.Time) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE rider_assignment
        SET state = $2,
            active = $3,
            picked_at    = CASE WHEN $2 = 'PICKED' AND picked_at IS NULL THEN $4 ELSE picked_at END,
            completed_at = CASE WHEN NOT $3 AND completed_at IS NULL THEN $4 ELSE completed_at END
        WHERE id = $1
    `, id, state, active, at)
	if err != nil {
		return fmt.Errorf("update assignment %d state: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("assignment %d not found", id)
	}
	return nil
}

// InsertEvidencePhoto records an immutable evidence row for a checkpoint.
func (r *TxRepo) InsertEvidencePhoto(ctx context.Context, p *domain.EvidencePhoto) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO delivery_photo (delivery_id, status_code, uploaded_by, photo_url, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, p.DeliveryID, p.Checkpoint, p.UploadedBy, p.PhotoRef, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert evidence photo for delivery %d: %w", p.DeliveryID, err)
	}
	return nil
}

// GetDelivery reads a delivery without locking. Returns nil when absent.
func (r *DispatchRepo) GetDelivery(ctx context.Context, id int64) (*domain.Delivery, error) {
	row := r.db.QueryRow(ctx, `
        SELECT `+deliveryColumns+`
        FROM delivery d
        WHERE d.id = $1
    `, id)

	d, err := scanDelivery(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery %d: %w", id, err)
	}
	return d, nil
}

// CurrentJob returns the courier's active assignment joined with its
// delivery, or nil when the courier is free. The partial unique index
// guarantees at most one row matches.
func (r *DispatchRepo) CurrentJob(ctx context.Context, courierID int64) (*domain.CurrentJob, error) {
	row := r.db.QueryRow(ctx, `
        SELECT `+assignmentColumns+`, `+deliveryColumns+`
        FROM rider_assignment ra
        JOIN delivery d ON d.id = ra.delivery_id
        WHERE ra.user_id = $1 AND ra.active
    `, courierID)

	var job domain.CurrentJob
	a := &job.Assignment
	d := &job.Delivery
	err := row.Scan(
		&a.ID, &a.DeliveryID, &a.CourierID, &a.State, &a.Active,
		&a.AcceptedAt, &a.PickedAt, &a.CompletedAt,
		&d.ID, &d.SenderID, &d.ReceiverID, &d.PickupAddressID, &d.DropoffAddressID,
		&d.Status, &d.Note, &d.SubmissionRef, &d.RequestedAt,
		&d.AssignedAt, &d.PickedAt, &d.DeliveredAt,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("current job for courier %d: %w", courierID, err)
	}
	return &job, nil
}

// AvailableJobs returns all WAITING deliveries, oldest first.
func (r *DispatchRepo) AvailableJobs(ctx context.Context) ([]domain.Delivery, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+deliveryColumns+`
        FROM delivery d
        WHERE d.status = $1
        ORDER BY d.requested_at ASC, d.id ASC
    `, domain.StatusWaiting)
	if err != nil {
		return nil, fmt.Errorf("available jobs: %w", err)
	}
	defer rows.Close()

	var out []domain.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("available jobs: %w", err)
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// CreateWaitingDelivery inserts a new WAITING delivery from a job
// submission. Returns false when the submission reference was already
// ingested; the duplicate is acknowledged without a second row.
func (r *DispatchRepo) CreateWaitingDelivery(ctx context.Context, d *domain.Delivery) (bool, error) {
	err := r.db.QueryRow(ctx, `
        INSERT INTO delivery (sender_id, receiver_id, pickup_address_id, dropoff_address_id,
                              status, note, submission_ref, requested_at)
        VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)
        ON CONFLICT (submission_ref) DO NOTHING
        RETURNING id
    `, d.SenderID, d.ReceiverID, d.PickupAddressID, d.DropoffAddressID,
		domain.StatusWaiting, d.Note, d.SubmissionRef, d.RequestedAt).Scan(&d.ID)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("create waiting delivery: %w", err)
	}
	d.Status = domain.StatusWaiting
	return true, nil
}

// ReconcileAssignments deactivates active assignments whose delivery already
// reached a terminal status, stamping completed_at once. courierID narrows
// the sweep to one courier; nil repairs everything. Idempotent: a repeated
// run matches nothing.
func (r *DispatchRepo) ReconcileAssignments(ctx context.Context, courierID *int64, now time.Time) (int64, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE rider_assignment ra
        SET active = FALSE,
            state = CASE WHEN d.status = 'DELIVERED' THEN 'COMPLETED' ELSE 'CANCELLED' END,
            completed_at = COALESCE(ra.completed_at, $1)
        FROM delivery d
        WHERE d.id = ra.delivery_id
          AND ra.active
          AND d.status IN ('DELIVERED', 'CANCELLED')
          AND ($2::bigint IS NULL OR ra.user_id = $2)
    `, now, courierID)
	if err != nil {
		return 0, fmt.Errorf("reconcile assignments: %w", err)
	}
	return ct.RowsAffected(), nil
}
