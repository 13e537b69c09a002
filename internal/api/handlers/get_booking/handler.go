package get_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/middleware"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings"
)

const (
	msgUnknownResourceType = "unknown resource type"
	msgInvalidBookingID    = "invalid booking id"
	msgNotFound            = "booking not found"
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

// Handle GET /api/v1/bookings/{resourceType}/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rt, err := handlers.ResourceTypeVar(r)
	if err != nil {
		h.logger.Warn("GET /bookings/{type}/{id} - Unknown resource type: %v", err)
		handlers.RespondNotFound(w, msgUnknownResourceType)
		return
	}

	bookingID, err := handlers.BookingIDVar(r)
	if err != nil {
		h.logger.Warn("GET /bookings/%s/{id} - Invalid booking ID: %v", rt, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	booking, err := h.service.GetByID(r.Context(), rt, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/%s/%d - Booking not found", rt, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/%s/%d - Failed to get booking: %v", rt, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Гость видит только свои бронирования, персонал - все
	if !id.IsStaff() && !strings.EqualFold(booking.Contact.Email, id.Email) {
		h.logger.Warn("GET /bookings/%s/%d - Access denied for %s", rt, bookingID, id.Email)
		handlers.RespondForbidden(w)
		return
	}

	h.logger.Info("GET /bookings/%s/%d - Booking retrieved successfully", rt, bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
