package get_my_bookings

import (
	"errors"
	"net/http"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/middleware"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings"
)

const msgPersistence = "bookings could not be loaded, please retry"

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

// Handle GET /api/v1/me/bookings
// Все бронирования текущего пользователя по всем типам ресурсов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /me/bookings - Missing user identity")
		handlers.RespondUnauthorized(w)
		return
	}

	result, err := h.service.ListByContact(r.Context(), id.Email)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrPersistence):
			h.logger.Error("GET /me/bookings - Persistence error for %s: %v", id.Email, err)
			handlers.RespondBadGateway(w, msgPersistence)

		default:
			h.logger.Error("GET /me/bookings - Failed to list bookings for %s: %v", id.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /me/bookings - Bookings retrieved successfully: user=%s, count=%d", id.Email, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
