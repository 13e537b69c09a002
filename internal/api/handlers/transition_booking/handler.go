package transition_booking

import (
	"errors"
	"net/http"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/middleware"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings"
)

const (
	msgUnknownResourceType = "unknown resource type"
	msgInvalidBookingID    = "invalid booking id"
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidStatus       = "invalid booking status"
	msgNotFound            = "booking not found"
	msgInvalidTransition   = "status change is not allowed"
	msgConflict            = "booking was changed by someone else, reload and retry"
	msgPersistence         = "booking could not be saved, please retry"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{resourceType}/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rt, err := handlers.ResourceTypeVar(r)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{type}/{id} - Unknown resource type: %v", err)
		handlers.RespondNotFound(w, msgUnknownResourceType)
		return
	}

	bookingID, err := handlers.BookingIDVar(r)
	if err != nil {
		h.logger.Warn("PATCH /bookings/%s/{id} - Invalid booking ID: %v", rt, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%s/%d - Invalid request body: %v", rt, bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Transition(r.Context(), req.ToServiceRequest(rt, bookingID, id.Email))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/%s/%d - Invalid status: %q", rt, bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%s/%d - Booking not found", rt, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/%s/%d - Invalid transition: %v", rt, bookingID, err)
			handlers.RespondUnprocessable(w, msgInvalidTransition)

		case errors.Is(err, bookings.ErrConflict):
			h.logger.Warn("PATCH /bookings/%s/%d - Conflict: %v", rt, bookingID, err)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, bookings.ErrPersistence):
			h.logger.Error("PATCH /bookings/%s/%d - Persistence error: %v", rt, bookingID, err)
			handlers.RespondBadGateway(w, msgPersistence)

		default:
			h.logger.Error("PATCH /bookings/%s/%d - Failed to change status: %v", rt, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%s/%d - Status changed to %s by %s, version=%d",
		rt, bookingID, result.Status, id.Email, result.Version)
	handlers.RespondJSON(w, http.StatusOK, result)
}
