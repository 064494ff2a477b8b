package handlers

import "time"

type claimJobRequest struct {
	CourierID int64 `json:"courier_id"`
}

type assignmentResponse struct {
	ID          int64      `json:"id"`
	DeliveryID  int64      `json:"delivery_id"`
	CourierID   int64      `json:"courier_id"`
	State       string     `json:"state"`
	Active      bool       `json:"active"`
	AcceptedAt  time.Time  `json:"accepted_at"`
	PickedAt    *time.Time `json:"picked_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type advanceDeliveryRequest struct {
	Status      string `json:"status"`
	EvidenceRef string `json:"evidence_ref,omitempty"`
}

type deliveryResponse struct {
	ID               int64      `json:"id"`
	SenderID         int64      `json:"sender_id"`
	ReceiverID       int64      `json:"receiver_id"`
	PickupAddressID  int64      `json:"pickup_address_id"`
	DropoffAddressID int64      `json:"dropoff_address_id"`
	Status           string     `json:"status"`
	Note             string     `json:"note,omitempty"`
	RequestedAt      time.Time  `json:"requested_at"`
	AssignedAt       *time.Time `json:"assigned_at,omitempty"`
	PickedAt         *time.Time `json:"picked_at,omitempty"`
	DeliveredAt      *time.Time `json:"delivered_at,omitempty"`
}

type advanceDeliveryResponse struct {
	Delivery   deliveryResponse    `json:"delivery"`
	Assignment *assignmentResponse `json:"assignment,omitempty"`
}

type currentJobResponse struct {
	Assignment assignmentResponse `json:"assignment"`
	Delivery   deliveryResponse   `json:"delivery"`
}

type reconcileResponse struct {
	Repaired int64 `json:"repaired"`
}

type recordLocationRequest struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	DeliveryID *int64  `json:"delivery_id,omitempty"`
}

type locationResponse struct {
	CourierID  int64     `json:"courier_id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"recorded_at"`
}
