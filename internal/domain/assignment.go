package domain

import "time"

// AssignmentState mirrors delivery progress from the courier's perspective.
type AssignmentState string

// List of possible assignment states.
const (
	StateAssigned  AssignmentState = "ASSIGNED"
	StatePicked    AssignmentState = "PICKED"
	StateCompleted AssignmentState = "COMPLETED"
	StateCancelled AssignmentState = "CANCELLED"
)

var allowedStates = [...]AssignmentState{
	StateAssigned, StatePicked, StateCompleted, StateCancelled,
}

// Valid checks if the AssignmentState is one of the known states.
func (s AssignmentState) Valid() bool {
	for _, v := range allowedStates {
		if s == v {
			return true
		}
	}
	return false
}

// Assignment - struct representing a courier holding a delivery job.
// At most one Assignment per courier has Active=true at any instant; the
// flag is cleared only when the delivery reaches a terminal status.
type Assignment struct {
	ID          int64
	DeliveryID  int64
	CourierID   int64
	State       AssignmentState
	Active      bool
	AcceptedAt  time.Time
	PickedAt    *time.Time
	CompletedAt *time.Time
}

// CurrentJob is a courier's active assignment joined with its delivery.
type CurrentJob struct {
	Assignment Assignment
	Delivery   Delivery
}
