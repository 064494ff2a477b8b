package handlers

import (
	"errors"
	"net/http"

	"delivery-dispatch/internal/apperr"
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
)

// TrackerHandler serves HTTP endpoints for courier location samples.
type TrackerHandler struct {
	usecase trackerUsecase
	logger  logx.Logger
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(logger logx.Logger, uc trackerUsecase) *TrackerHandler {
	return &TrackerHandler{usecase: uc, logger: logger}
}

// RecordLocation handles POST /riders/{riderID}/location.
func (h *TrackerHandler) RecordLocation(w http.ResponseWriter, r *http.Request) {
	courierID, err := idFromURL(r, "riderID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid rider id")
		return
	}

	var req recordLocationRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	coords := domain.Coordinates{Lat: req.Lat, Lng: req.Lng}
	err = h.usecase.Record(r.Context(), courierID, coords, req.DeliveryID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusAccepted, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// RiderLocation handles GET /deliveries/{deliveryID}/rider-location.
func (h *TrackerHandler) RiderLocation(w http.ResponseWriter, r *http.Request) {
	deliveryID, err := idFromURL(r, "deliveryID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid delivery id")
		return
	}

	sample, err := h.usecase.LatestFor(r.Context(), deliveryID)
	switch {
	case err == nil && sample == nil:
		writeError(h.logger, w, r, http.StatusNotFound, "no location available")
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, sampleToResponse(*sample))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
