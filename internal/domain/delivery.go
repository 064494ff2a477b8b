package domain

import "time"

// Status is the lifecycle status of a delivery.
type Status string

// List of possible delivery statuses. WAITING is the initial status;
// DELIVERED and CANCELLED are terminal.
const (
	StatusWaiting   Status = "WAITING"
	StatusAssigned  Status = "ASSIGNED"
	StatusOnRoute   Status = "ON_ROUTE"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

var allowedStatuses = [...]Status{
	StatusWaiting, StatusAssigned, StatusOnRoute, StatusDelivered, StatusCancelled,
}

// Valid checks if the Status is one of the known delivery statuses.
func (s Status) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Active reports whether the delivery is being handled by a courier.
func (s Status) Active() bool {
	return s == StatusAssigned || s == StatusOnRoute
}

// Delivery - struct representing a point-to-point delivery job.
// Sender, receiver and address fields are opaque references owned by
// external collaborators. A delivery is never deleted, only terminal-stated.
type Delivery struct {
	ID               int64
	SenderID         int64
	ReceiverID       int64
	PickupAddressID  int64
	DropoffAddressID int64
	Status           Status
	Note             string
	SubmissionRef    string
	RequestedAt      time.Time
	AssignedAt       *time.Time
	PickedAt         *time.Time
	DeliveredAt      *time.Time
}
