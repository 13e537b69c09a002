package create_booking

import (
	"errors"
	"net/http"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/payment"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/drafts"
	createBooking "github.com/suraSGML/meskeremhotelproject-sub000/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgUnknownResourceType = "unknown resource type"
	msgCatalogNotFound     = "selected resource not found"
	msgCatalogUnavailable  = "catalog is temporarily unavailable"
	msgSettlementTimeout   = "payment provider did not respond in time, nothing was charged"
	msgPaymentDeclined     = "payment was declined"
	msgSubmissionCancelled = "submission was cancelled, no booking was created"
	msgPersistence         = "booking could not be saved, please retry"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{resourceType}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rt, err := handlers.ResourceTypeVar(r)
	if err != nil {
		h.logger.Warn("POST /bookings/{type} - Unknown resource type: %v", err)
		handlers.RespondNotFound(w, msgUnknownResourceType)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/%s - Invalid request body: %v", rt, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(rt))
	if err != nil {
		var fieldErr *domain.FieldError
		switch {
		case errors.Is(err, drafts.ErrCatalogEntryNotFound):
			h.logger.Warn("POST /bookings/%s - Catalog entry not found: ref=%s", rt, req.ResourceRef)
			handlers.RespondNotFound(w, msgCatalogNotFound)

		case errors.As(err, &fieldErr):
			h.logger.Warn("POST /bookings/%s - Validation failed: field=%s, error=%v", rt, fieldErr.Field, fieldErr.Err)
			handlers.RespondFieldError(w, fieldErr.Field, fieldErr.Err.Error())

		case errors.Is(err, createBooking.ErrInvalidInput), errors.Is(err, domain.ErrUnknownResourceType):
			h.logger.Warn("POST /bookings/%s - Invalid input: %v", rt, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, payment.ErrDeclined):
			h.logger.Warn("POST /bookings/%s - Payment declined: method=%s", rt, req.Payment.Method)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentDeclined)

		case errors.Is(err, payment.ErrSettlementTimeout):
			h.logger.Error("POST /bookings/%s - Settlement timeout: method=%s", rt, req.Payment.Method)
			handlers.RespondError(w, http.StatusGatewayTimeout, msgSettlementTimeout)

		case errors.Is(err, payment.ErrSettlementCancelled), errors.Is(err, createBooking.ErrSubmissionAbandoned):
			h.logger.Warn("POST /bookings/%s - Submission cancelled: %v", rt, err)
			handlers.RespondError(w, http.StatusRequestTimeout, msgSubmissionCancelled)

		case errors.Is(err, drafts.ErrCatalog):
			h.logger.Error("POST /bookings/%s - Catalog error: %v", rt, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		case errors.Is(err, bookings.ErrPersistence):
			h.logger.Error("POST /bookings/%s - Persistence error: %v", rt, err)
			handlers.RespondBadGateway(w, msgPersistence)

		default:
			h.logger.Error("POST /bookings/%s - Failed to create booking: %v", rt, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%s - Booking created successfully: booking_id=%d, status=%s, ref=%s",
		rt, result.ID, result.Status, result.TransactionRef)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
