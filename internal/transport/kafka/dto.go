package kafka

import (
	"strings"
	"time"

	"delivery-dispatch/internal/service/intake"
)

// SubmissionDTO is the wire form of a delivery submission message.
type SubmissionDTO struct {
	SubmissionRef    string    `json:"submission_ref"`
	SenderID         int64     `json:"sender_id"`
	ReceiverID       int64     `json:"receiver_id"`
	PickupAddressID  int64     `json:"pickup_address_id"`
	DropoffAddressID int64     `json:"dropoff_address_id"`
	Note             string    `json:"note"`
	RequestedAt      time.Time `json:"requested_at"`
}

// ToDomain converts SubmissionDTO to intake.Event
func ToDomain(dto SubmissionDTO) intake.Event {
	return intake.Event{
		SubmissionRef:    strings.TrimSpace(dto.SubmissionRef),
		SenderID:         dto.SenderID,
		ReceiverID:       dto.ReceiverID,
		PickupAddressID:  dto.PickupAddressID,
		DropoffAddressID: dto.DropoffAddressID,
		Note:             strings.TrimSpace(dto.Note),
		RequestedAt:      dto.RequestedAt,
	}
}
