package get_payment_methods

import (
	"net/http"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
)

const msgResourceTypeRequired = "resourceType query parameter is required"

type Handler struct {
	registry MethodRegistry
	logger   Logger
}

func NewHandler(registry MethodRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Handle GET /api/v1/payment-methods?resourceType=room
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("resourceType")
	if raw == "" {
		h.logger.Warn("GET /payment-methods - Missing resourceType")
		handlers.RespondBadRequest(w, msgResourceTypeRequired)
		return
	}

	rt, err := domain.ParseResourceType(raw)
	if err != nil {
		h.logger.Warn("GET /payment-methods - Invalid resourceType: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	methods := h.registry.MethodsFor(rt)

	h.logger.Info("GET /payment-methods - Methods retrieved: resource_type=%s, count=%d", rt, len(methods))
	handlers.RespondJSON(w, http.StatusOK, PaymentMethodsResponse{
		ResourceType: string(rt),
		Methods:      methods,
	})
}
