package update_payment_status

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
	msgInvalidStatus       = "invalid payment status"
	msgNotFound            = "booking not found"
	msgInvalidTransition   = "payment status change is not allowed"
	msgBookingClosed       = "booking is cancelled"
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

// Handle PATCH /api/v1/bookings/{resourceType}/{bookingId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rt, err := handlers.ResourceTypeVar(r)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{type}/{id}/payment - Unknown resource type: %v", err)
		handlers.RespondNotFound(w, msgUnknownResourceType)
		return
	}

	bookingID, err := handlers.BookingIDVar(r)
	if err != nil {
		h.logger.Warn("PATCH /bookings/%s/{id}/payment - Invalid booking ID: %v", rt, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req UpdatePaymentStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%s/%d/payment - Invalid request body: %v", rt, bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdatePaymentStatus(r.Context(), req.ToServiceRequest(rt, bookingID, id.Email))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/%s/%d/payment - Invalid payment status: %q", rt, bookingID, req.PaymentStatus)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%s/%d/payment - Booking not found", rt, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidPaymentTransition):
			h.logger.Warn("PATCH /bookings/%s/%d/payment - Invalid transition: %v", rt, bookingID, err)
			handlers.RespondUnprocessable(w, msgInvalidTransition)

		case errors.Is(err, bookings.ErrBookingClosed):
			h.logger.Warn("PATCH /bookings/%s/%d/payment - Booking closed", rt, bookingID)
			handlers.RespondUnprocessable(w, msgBookingClosed)

		case errors.Is(err, bookings.ErrConflict):
			h.logger.Warn("PATCH /bookings/%s/%d/payment - Conflict: %v", rt, bookingID, err)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, bookings.ErrPersistence):
			h.logger.Error("PATCH /bookings/%s/%d/payment - Persistence error: %v", rt, bookingID, err)
			handlers.RespondBadGateway(w, msgPersistence)

		default:
			h.logger.Error("PATCH /bookings/%s/%d/payment - Failed to update payment: %v", rt, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%s/%d/payment - Payment status changed to %s by %s",
		rt, bookingID, result.PaymentStatus, id.Email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
