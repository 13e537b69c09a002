package get_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/middleware"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err error
}

func (f fakeService) GetByID(_ context.Context, rt domain.ResourceType, id int64) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{
		ID:           id,
		ResourceType: string(rt),
		Contact:      domain.Contact{Name: "Abebe", Email: "Abebe@Example.com"},
	}, nil
}

func serve(svc BookingService, identity *middleware.Identity) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/room/3", nil)
	req = mux.SetURLVars(req, map[string]string{"resourceType": "room", "bookingId": "3"})
	if identity != nil {
		req = req.WithContext(middleware.WithIdentity(req.Context(), *identity))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Access(t *testing.T) {
	tests := []struct {
		name     string
		identity *middleware.Identity
		status   int
	}{
		{"owner", &middleware.Identity{Email: "abebe@example.com"}, http.StatusOK},
		{"staff", &middleware.Identity{Email: "desk@hotel.et", Role: middleware.RoleStaff}, http.StatusOK},
		{"other guest", &middleware.Identity{Email: "someone@example.com"}, http.StatusForbidden},
		{"anonymous", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(fakeService{}, tt.identity).Code)
		})
	}
}

func TestHandle_Errors(t *testing.T) {
	owner := &middleware.Identity{Email: "abebe@example.com"}

	assert.Equal(t, http.StatusNotFound, serve(fakeService{err: bookings.ErrBookingNotFound}, owner).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(fakeService{err: errors.New("boom")}, owner).Code)
}
