package intake

import "time"

// Event is a delivery submission received from the upstream order flow.
// SubmissionRef deduplicates redelivered messages.
type Event struct {
	SubmissionRef    string    `json:"submission_ref"`
	SenderID         int64     `json:"sender_id"`
	ReceiverID       int64     `json:"receiver_id"`
	PickupAddressID  int64     `json:"pickup_address_id"`
	DropoffAddressID int64     `json:"dropoff_address_id"`
	Note             string    `json:"note"`
	RequestedAt      time.Time `json:"requested_at"`
}

// Valid reports whether the event carries everything needed to open a job.
func (e Event) Valid() bool {
	return e.SubmissionRef != "" &&
		e.SenderID > 0 &&
		e.ReceiverID > 0 &&
		e.PickupAddressID > 0 &&
		e.DropoffAddressID > 0
}
