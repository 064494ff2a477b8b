package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrCourierBusy is returned when a courier already holds an active assignment.
var ErrCourierBusy = errors.New("courier busy")

// ErrJobNotAvailable is returned when a delivery is no longer in WAITING status.
var ErrJobNotAvailable = errors.New("job not available")

// ErrDeliveryNotFound is returned when the requested delivery does not exist.
var ErrDeliveryNotFound = errors.New("delivery not found")

// ErrIllegalTransition is returned when the requested status change is not an
// edge of the lifecycle graph.
var ErrIllegalTransition = errors.New("illegal status transition")

// ErrEvidenceRequired is returned when a transition needs a photo reference
// and none was supplied.
var ErrEvidenceRequired = errors.New("evidence required")

// ErrTransactionConflict signals a serialization failure or lock timeout.
// The whole operation is safe to retry once.
var ErrTransactionConflict = errors.New("transaction conflict")

// ErrStoreUnavailable signals that the store cannot be reached. Fatal to the
// request; not retried by the engine.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrNotFound indicates that a requested resource does not exist.
var ErrNotFound = errors.New("not found")
