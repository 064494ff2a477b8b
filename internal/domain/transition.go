package domain

import (
	"delivery-dispatch/internal/apperr"
)

// Transition is the validated outcome of a requested status change: the new
// delivery status, the mirrored assignment state, and whether the courier is
// released afterwards.
type Transition struct {
	Next       Status
	State      AssignmentState
	Checkpoint Checkpoint
	Evidence   bool
	Terminal   bool
}

// edge describes one legal transition of the lifecycle graph.
type edge struct {
	state      AssignmentState
	checkpoint Checkpoint
	evidence   bool
}

// Legal transition graph. WAITING -> ASSIGNED happens only through a claim
// and is deliberately absent here: it must never arrive as a status edit.
var transitions = map[Status]map[Status]edge{
	StatusAssigned: {
		StatusOnRoute:   {state: StatePicked, checkpoint: CheckpointPickedUp, evidence: true},
		StatusCancelled: {state: StateCancelled},
	},
	StatusOnRoute: {
		StatusDelivered: {state: StateCompleted, checkpoint: CheckpointDelivered, evidence: true},
		StatusCancelled: {state: StateCancelled},
	},
}

// PlanTransition decides whether current -> requested is a legal lifecycle
// step. Evidence gating is a hard precondition: an edge that requires a photo
// reference fails with ErrEvidenceRequired before any mutation can happen.
// Same-state no-ops, skipped states and moves out of a terminal status fail
// with ErrIllegalTransition.
func PlanTransition(current, requested Status, hasEvidence bool) (Transition, error) {
	if !requested.Valid() {
		return Transition{}, apperr.ErrInvalid
	}

	e, ok := transitions[current][requested]
	if !ok {
		return Transition{}, apperr.ErrIllegalTransition
	}
	if e.evidence && !hasEvidence {
		return Transition{}, apperr.ErrEvidenceRequired
	}

	return Transition{
		Next:       requested,
		State:      e.state,
		Checkpoint: e.checkpoint,
		Evidence:   e.evidence,
		Terminal:   requested.Terminal(),
	}, nil
}
