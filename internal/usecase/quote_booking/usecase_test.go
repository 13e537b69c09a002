package quote_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/draft"
	catalogRepo "github.com/suraSGML/meskeremhotelproject-sub000/internal/infra/storage/catalog"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/payment"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/pricing"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/drafts"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeCatalog struct{}

func (fakeCatalog) GetEntry(_ context.Context, rt domain.ResourceType, ref string) (*domain.CatalogEntry, error) {
	if rt == domain.ResourceRoom && ref == "12" {
		return &domain.CatalogEntry{ID: ref, Name: "Deluxe King", UnitPrice: money.FromMajor(120), Capacity: 2, Available: true}, nil
	}
	return nil, catalogRepo.ErrEntryNotFound
}

func (fakeCatalog) GetMenuItems(_ context.Context, ids []string) (map[string]*domain.CatalogEntry, error) {
	return map[string]*domain.CatalogEntry{
		"tibs": {ID: "tibs", Name: "Tibs", UnitPrice: money.FromMajor(150), Available: true},
	}, nil
}

func newUseCase() *UseCase {
	uc := NewUseCase(drafts.NewService(fakeCatalog{}, nopLogger{}), payment.NewRegistry(), nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_RoomQuote(t *testing.T) {
	resp, err := newUseCase().Execute(context.Background(), &Request{
		ResourceType: domain.ResourceRoom,
		ResourceRef:  "12",
		Fields: map[domain.Field]string{
			domain.FieldName:     "Abebe",
			domain.FieldEmail:    "abebe@example.com",
			domain.FieldCheckIn:  "2024-06-01",
			domain.FieldCheckOut: "2024-06-04",
			domain.FieldGuests:   "2",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, money.FromMajor(360), *resp.TotalAmount)
	assert.Equal(t, 3, *resp.Nights)
	assert.True(t, resp.Submittable)
	assert.Nil(t, resp.Problem)
	assert.Len(t, resp.PaymentMethods, 5)
	assert.Equal(t, draft.RequiredFields(domain.ResourceRoom), resp.RequiredFields)
}

func TestExecute_InvalidRangeReportsProblem(t *testing.T) {
	resp, err := newUseCase().Execute(context.Background(), &Request{
		ResourceType: domain.ResourceRoom,
		ResourceRef:  "12",
		Fields: map[domain.Field]string{
			domain.FieldName:     "Abebe",
			domain.FieldEmail:    "abebe@example.com",
			domain.FieldCheckIn:  "2024-06-04",
			domain.FieldCheckOut: "2024-06-01",
			domain.FieldGuests:   "2",
		},
	})

	require.NoError(t, err)
	assert.Nil(t, resp.TotalAmount)
	assert.Nil(t, resp.Nights)
	assert.False(t, resp.Submittable)
	require.NotNil(t, resp.Problem)
	assert.Equal(t, domain.FieldCheckOut, resp.Problem.Field)
	assert.Equal(t, pricing.ErrInvalidRange.Error(), resp.Problem.Message)
}

func TestExecute_IncompleteFormStillQuotesCart(t *testing.T) {
	resp, err := newUseCase().Execute(context.Background(), &Request{
		ResourceType: domain.ResourceRoomService,
		Cart:         []drafts.CartItem{{ItemID: "tibs", Quantity: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, money.FromMajor(300), *resp.TotalAmount)
	assert.False(t, resp.Submittable)
	require.NotNil(t, resp.Problem)
	assert.Equal(t, domain.FieldName, resp.Problem.Field)
}

func TestExecute_UnknownRef(t *testing.T) {
	_, err := newUseCase().Execute(context.Background(), &Request{ResourceType: domain.ResourceRoom, ResourceRef: "99"})

	assert.ErrorIs(t, err, drafts.ErrCatalogEntryNotFound)
}
