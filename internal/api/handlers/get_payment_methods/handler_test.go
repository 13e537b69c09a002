package get_payment_methods

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/payment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func serve(query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payment-methods"+query, nil)
	rec := httptest.NewRecorder()
	NewHandler(payment.NewRegistry(), nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_ReturnsAllMethodsInOrder(t *testing.T) {
	rec := serve("?resourceType=spa")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PaymentMethodsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "spa", resp.ResourceType)
	require.Len(t, resp.Methods, 5)
	assert.Equal(t, "telebirr", string(resp.Methods[0].Code))
	assert.Equal(t, "pay_at_hotel", string(resp.Methods[4].Code))
	assert.Empty(t, resp.Methods[4].RequiredFields)
	assert.Equal(t, "accountNumber", string(resp.Methods[3].RequiredFields[0]))
}

func TestHandle_BadResourceType(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve("").Code)
	assert.Equal(t, http.StatusBadRequest, serve("?resourceType=garage").Code)
}
