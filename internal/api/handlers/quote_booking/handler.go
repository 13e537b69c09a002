package quote_booking

import (
	"errors"
	"net/http"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/drafts"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgUnknownResourceType = "unknown resource type"
	msgCatalogNotFound     = "selected resource not found"
	msgCatalogUnavailable  = "catalog is temporarily unavailable"
)

type Handler struct {
	useCase QuoteUseCase
	logger  Logger
}

func NewHandler(useCase QuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes/{resourceType}
// Пересчёт суммы по форме без оплаты и сохранения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rt, err := handlers.ResourceTypeVar(r)
	if err != nil {
		h.logger.Warn("POST /quotes/{type} - Unknown resource type: %v", err)
		handlers.RespondNotFound(w, msgUnknownResourceType)
		return
	}

	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes/%s - Invalid request body: %v", rt, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(rt))
	if err != nil {
		var fieldErr *domain.FieldError
		switch {
		case errors.Is(err, drafts.ErrCatalogEntryNotFound):
			h.logger.Warn("POST /quotes/%s - Catalog entry not found: ref=%s", rt, req.ResourceRef)
			handlers.RespondNotFound(w, msgCatalogNotFound)

		case errors.As(err, &fieldErr):
			h.logger.Warn("POST /quotes/%s - Invalid field: field=%s, error=%v", rt, fieldErr.Field, fieldErr.Err)
			handlers.RespondFieldError(w, fieldErr.Field, fieldErr.Err.Error())

		case errors.Is(err, domain.ErrUnknownResourceType):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, drafts.ErrCatalog):
			h.logger.Error("POST /quotes/%s - Catalog error: %v", rt, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /quotes/%s - Failed to quote: %v", rt, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
