package list_bookings

import (
	"errors"
	"net/http"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings"
)

const (
	msgUnknownResourceType = "unknown resource type"
	msgInvalidParams       = "invalid query parameters"
	msgPersistence         = "bookings could not be loaded, please retry"
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

// Handle GET /api/v1/bookings/{resourceType}
// Query params: status, contactEmail (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rt, err := handlers.ResourceTypeVar(r)
	if err != nil {
		h.logger.Warn("GET /bookings/{type} - Unknown resource type: %v", err)
		handlers.RespondNotFound(w, msgUnknownResourceType)
		return
	}

	result, err := h.service.ListByFilter(r.Context(), ToServiceRequest(rt, r.URL.Query()))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/%s - Invalid parameters: %v", rt, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, bookings.ErrPersistence):
			h.logger.Error("GET /bookings/%s - Persistence error: %v", rt, err)
			handlers.RespondBadGateway(w, msgPersistence)

		default:
			h.logger.Error("GET /bookings/%s - Failed to list bookings: %v", rt, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/%s - Bookings retrieved successfully: count=%d", rt, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
