package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/draft"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/payment"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings/models"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/drafts"
	createBooking "github.com/suraSGML/meskeremhotelproject-sub000/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *createBooking.Request
	resp *models.BookingResponse
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*models.BookingResponse, error) {
	f.got = req
	return f.resp, f.err
}

const body = `{
	"resourceRef": "12",
	"contact": {"name": "Abebe", "email": "abebe@example.com"},
	"params": {"checkIn": "2024-06-01", "checkOut": "2024-06-04", "guests": 2},
	"payment": {"method": "telebirr", "phone": "0911223344"}
}`

func serve(h *Handler, resourceType, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+resourceType, strings.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"resourceType": resourceType})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &models.BookingResponse{ID: 7, ResourceType: "room", Status: "confirmed", PaymentStatus: "paid"}}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "room", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)

	require.NotNil(t, uc.got)
	assert.Equal(t, domain.ResourceRoom, uc.got.ResourceType)
	assert.Equal(t, "telebirr", uc.got.PaymentMethod)
	assert.Equal(t, "2", uc.got.Fields[domain.FieldGuests])
	assert.Equal(t, "0911223344", uc.got.Fields[domain.FieldPaymentPhone])
	assert.NotContains(t, uc.got.Fields, domain.FieldAccountNumber)
}

func TestHandle_RequestErrors(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	assert.Equal(t, http.StatusNotFound, serve(h, "parking", body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "room", `{"unknown": 1}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "room", ``).Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		field  string
	}{
		{"missing field", domain.NewFieldError(domain.FieldCheckOut, draft.ErrDraftIncomplete), http.StatusBadRequest, "checkOut"},
		{"missing payment field", domain.NewFieldError(domain.FieldPaymentPhone, payment.ErrMissingField), http.StatusBadRequest, "paymentPhone"},
		{"unknown catalog ref", domain.NewFieldError(domain.FieldResourceRef, drafts.ErrCatalogEntryNotFound), http.StatusNotFound, ""},
		{"invalid input", fmt.Errorf("%w: x", createBooking.ErrInvalidInput), http.StatusBadRequest, ""},
		{"declined", payment.ErrDeclined, http.StatusPaymentRequired, ""},
		{"timeout", fmt.Errorf("%w: no response", payment.ErrSettlementTimeout), http.StatusGatewayTimeout, ""},
		{"cancelled", payment.ErrSettlementCancelled, http.StatusRequestTimeout, ""},
		{"abandoned", createBooking.ErrSubmissionAbandoned, http.StatusRequestTimeout, ""},
		{"catalog down", drafts.ErrCatalog, http.StatusBadGateway, ""},
		{"persistence", fmt.Errorf("%w: insert", bookings.ErrPersistence), http.StatusBadGateway, ""},
		{"invariant", bookings.ErrInvariantViolation, http.StatusInternalServerError, ""},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := serve(h, "room", body)

			assert.Equal(t, tt.status, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, tt.field, resp.Field)
		})
	}
}
