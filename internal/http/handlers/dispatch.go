package handlers

import (
	"errors"
	"net/http"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
)

// DispatchHandler serves HTTP endpoints for job claiming and the delivery
// lifecycle.
type DispatchHandler struct {
	assignments assignmentUsecase
	lifecycle   lifecycleUsecase
	logger      logx.Logger
}

// NewDispatchHandler creates a new DispatchHandler.
func NewDispatchHandler(logger logx.Logger, a assignmentUsecase, l lifecycleUsecase) *DispatchHandler {
	return &DispatchHandler{assignments: a, lifecycle: l, logger: logger}
}

// Claim handles POST /deliveries/{deliveryID}/claim.
func (h *DispatchHandler) Claim(w http.ResponseWriter, r *http.Request) {
	deliveryID, err := idFromURL(r, "deliveryID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid delivery id")
		return
	}

	var req claimJobRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	a, err := h.assignments.Claim(r.Context(), deliveryID, req.CourierID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusCreated, assignmentToResponse(a))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrDeliveryNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "delivery not found")
	case errors.Is(err, apperr.ErrCourierBusy):
		writeError(h.logger, w, r, http.StatusConflict, "courier already has an active job")
	case errors.Is(err, apperr.ErrJobNotAvailable):
		writeError(h.logger, w, r, http.StatusConflict, "job not available")
	case errors.Is(err, apperr.ErrTransactionConflict), errors.Is(err, apperr.ErrStoreUnavailable):
		writeError(h.logger, w, r, http.StatusServiceUnavailable, "temporarily unavailable")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Advance handles POST /deliveries/{deliveryID}/advance.
func (h *DispatchHandler) Advance(w http.ResponseWriter, r *http.Request) {
	deliveryID, err := idFromURL(r, "deliveryID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid delivery id")
		return
	}

	var req advanceDeliveryRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.lifecycle.Advance(r.Context(), deliveryID, domain.Status(req.Status), req.EvidenceRef)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, advanceResultToResponse(res))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrDeliveryNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "delivery not found")
	case errors.Is(err, apperr.ErrIllegalTransition):
		writeError(h.logger, w, r, http.StatusUnprocessableEntity, "illegal status transition")
	case errors.Is(err, apperr.ErrEvidenceRequired):
		writeError(h.logger, w, r, http.StatusUnprocessableEntity, "photo evidence required")
	case errors.Is(err, apperr.ErrTransactionConflict), errors.Is(err, apperr.ErrStoreUnavailable):
		writeError(h.logger, w, r, http.StatusServiceUnavailable, "temporarily unavailable")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// CurrentJob handles GET /riders/{riderID}/current-job.
func (h *DispatchHandler) CurrentJob(w http.ResponseWriter, r *http.Request) {
	courierID, err := idFromURL(r, "riderID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid rider id")
		return
	}

	job, err := h.assignments.CurrentJob(r.Context(), courierID)
	switch {
	case err == nil && job == nil:
		writeError(h.logger, w, r, http.StatusNotFound, "no active job")
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, currentJobToResponse(*job))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// AvailableJobs handles GET /deliveries/available.
func (h *DispatchHandler) AvailableJobs(w http.ResponseWriter, r *http.Request) {
	list, err := h.assignments.AvailableJobs(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveriesToResponse(list))
}

// Reconcile handles POST /riders/{riderID}/reconcile.
func (h *DispatchHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	courierID, err := idFromURL(r, "riderID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid rider id")
		return
	}

	repaired, err := h.assignments.Reconcile(r.Context(), courierID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, reconcileResponse{Repaired: repaired})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
