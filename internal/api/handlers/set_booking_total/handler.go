package set_booking_total

import (
	"errors"
	"net/http"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/middleware"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings"
)

const (
	msgUnknownResourceType = "unknown resource type"
	msgInvalidBookingID    = "invalid booking id"
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidTotal        = "total must be positive"
	msgNotFound            = "booking not found"
	msgAlreadyPriced       = "booking already has a total"
	msgBookingClosed       = "booking is completed or cancelled"
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

// Handle PUT /api/v1/bookings/{resourceType}/{bookingId}/total
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rt, err := handlers.ResourceTypeVar(r)
	if err != nil {
		h.logger.Warn("PUT /bookings/{type}/{id}/total - Unknown resource type: %v", err)
		handlers.RespondNotFound(w, msgUnknownResourceType)
		return
	}

	bookingID, err := handlers.BookingIDVar(r)
	if err != nil {
		h.logger.Warn("PUT /bookings/%s/{id}/total - Invalid booking ID: %v", rt, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req SetTotalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%s/%d/total - Invalid request body: %v", rt, bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetTotal(r.Context(), req.ToServiceRequest(rt, bookingID, id.Email))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/%s/%d/total - Invalid total: %s", rt, bookingID, req.TotalAmount)
			handlers.RespondFieldError(w, domain.FieldTotalAmount, msgInvalidTotal)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/%s/%d/total - Booking not found", rt, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrTotalAlreadySet):
			h.logger.Warn("PUT /bookings/%s/%d/total - Already priced", rt, bookingID)
			handlers.RespondConflict(w, msgAlreadyPriced)

		case errors.Is(err, bookings.ErrBookingClosed):
			h.logger.Warn("PUT /bookings/%s/%d/total - Booking closed: %v", rt, bookingID, err)
			handlers.RespondUnprocessable(w, msgBookingClosed)

		case errors.Is(err, bookings.ErrConflict):
			h.logger.Warn("PUT /bookings/%s/%d/total - Conflict: %v", rt, bookingID, err)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, bookings.ErrPersistence):
			h.logger.Error("PUT /bookings/%s/%d/total - Persistence error: %v", rt, bookingID, err)
			handlers.RespondBadGateway(w, msgPersistence)

		default:
			h.logger.Error("PUT /bookings/%s/%d/total - Failed to set total: %v", rt, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/%s/%d/total - Priced at %s by %s", rt, bookingID, req.TotalAmount, id.Email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
