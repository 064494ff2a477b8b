package intake

import (
	"context"
	"time"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
)

// Processor turns submission events into WAITING deliveries. Malformed events
// are logged and dropped so a poison message cannot wedge the consumer;
// duplicates are absorbed by the submission_ref uniqueness.
type Processor struct {
	repo   deliveryCreator
	logger logx.Logger
	now    func() time.Time
}

// NewProcessor creates a new intake Processor.
func NewProcessor(r deliveryCreator, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Processor{
		repo:   r,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes a single submission event. A nil return acknowledges the
// message; only store errors propagate so the consumer retries them.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if !e.Valid() {
		p.logger.Warn("dropping malformed submission",
			logx.String("submission_ref", e.SubmissionRef),
			logx.Int64("sender_id", e.SenderID),
		)
		return nil
	}

	requestedAt := e.RequestedAt
	if requestedAt.IsZero() {
		requestedAt = p.now()
	}

	d := &domain.Delivery{
		SenderID:         e.SenderID,
		ReceiverID:       e.ReceiverID,
		PickupAddressID:  e.PickupAddressID,
		DropoffAddressID: e.DropoffAddressID,
		Status:           domain.StatusWaiting,
		Note:             e.Note,
		SubmissionRef:    e.SubmissionRef,
		RequestedAt:      requestedAt,
	}

	inserted, err := p.repo.CreateWaitingDelivery(ctx, d)
	if err != nil {
		return err
	}
	if !inserted {
		p.logger.Debug("duplicate submission ignored",
			logx.String("submission_ref", e.SubmissionRef),
		)
		return nil
	}

	p.logger.Info("delivery job opened",
		logx.String("event", "job_opened"),
		logx.Int64("delivery_id", d.ID),
		logx.String("submission_ref", e.SubmissionRef),
	)
	return nil
}
