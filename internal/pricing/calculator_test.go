package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/ptr"
)

func date(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func entry(price int64) *domain.CatalogEntry {
	return &domain.CatalogEntry{ID: "1", Name: "test", UnitPrice: money.FromMajor(price), Available: true}
}

func TestComputeTotal_Room(t *testing.T) {
	params := domain.BookingParams{
		CheckIn:  ptr.Ptr(date("2024-06-01")),
		CheckOut: ptr.Ptr(date("2024-06-04")),
	}

	total, err := ComputeTotal(domain.ResourceRoom, entry(120), params)

	require.NoError(t, err)
	require.NotNil(t, total)
	assert.Equal(t, money.FromMajor(360), *total)
}

func TestComputeTotal_RoomInvalidRange(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{name: "same day", checkIn: "2024-06-01", checkOut: "2024-06-01"},
		{name: "checkout before checkin", checkIn: "2024-06-05", checkOut: "2024-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := domain.BookingParams{
				CheckIn:  ptr.Ptr(date(tt.checkIn)),
				CheckOut: ptr.Ptr(date(tt.checkOut)),
			}

			total, err := ComputeTotal(domain.ResourceRoom, entry(120), params)

			assert.Nil(t, total)
			assert.ErrorIs(t, err, ErrInvalidRange)

			var fieldErr *domain.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, domain.FieldCheckOut, fieldErr.Field)
		})
	}
}

func TestComputeTotal_RoomMonotonicInNights(t *testing.T) {
	checkIn := date("2024-06-01")
	var previous money.Money

	for nights := 1; nights <= 30; nights++ {
		params := domain.BookingParams{
			CheckIn:  ptr.Ptr(checkIn),
			CheckOut: ptr.Ptr(checkIn.AddDate(0, 0, nights)),
		}

		total, err := ComputeTotal(domain.ResourceRoom, entry(95), params)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, int64(*total), int64(previous), "nights=%d", nights)
		previous = *total
	}
}

func TestComputeTotal_EventSpaceIsUnpriced(t *testing.T) {
	total, err := ComputeTotal(domain.ResourceEventSpace, entry(5000), domain.BookingParams{Guests: ptr.Ptr(150)})

	assert.NoError(t, err)
	assert.Nil(t, total)
}

func TestComputeTotal_FlatFees(t *testing.T) {
	tableTotal, err := ComputeTotal(domain.ResourceTable, entry(200), domain.BookingParams{PartySize: ptr.Ptr(2)})
	require.NoError(t, err)
	bigPartyTotal, err := ComputeTotal(domain.ResourceTable, entry(200), domain.BookingParams{PartySize: ptr.Ptr(12)})
	require.NoError(t, err)
	assert.Equal(t, *tableTotal, *bigPartyTotal)

	transferTotal, err := ComputeTotal(domain.ResourceTransfer, entry(1500), domain.BookingParams{Passengers: ptr.Ptr(4)})
	require.NoError(t, err)
	assert.Equal(t, money.FromMajor(1500), *transferTotal)
}

func TestComputeTotal_SpaAndExperience(t *testing.T) {
	spa, err := ComputeTotal(domain.ResourceSpa, entry(800), domain.BookingParams{})
	require.NoError(t, err)
	assert.Equal(t, money.FromMajor(800), *spa)

	exp, err := ComputeTotal(domain.ResourceExperience, entry(650), domain.BookingParams{Participants: ptr.Ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, money.FromMajor(1950), *exp)

	_, err = ComputeTotal(domain.ResourceExperience, entry(650), domain.BookingParams{Participants: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestComputeTotal_MissingCatalogEntry(t *testing.T) {
	_, err := ComputeTotal(domain.ResourceSpa, nil, domain.BookingParams{})
	assert.ErrorIs(t, err, ErrMissingCatalogEntry)
}

func TestComputeTotal_UnknownResource(t *testing.T) {
	_, err := ComputeTotal(domain.ResourceType("parking"), entry(1), domain.BookingParams{})
	assert.ErrorIs(t, err, ErrUnsupportedResource)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(date("2024-06-01"), date("2024-06-04")))
	assert.Equal(t, 0, Nights(date("2024-06-04"), date("2024-06-01")))
	// время суток не влияет на количество ночей
	assert.Equal(t, 1, Nights(date("2024-06-01").Add(22*time.Hour), date("2024-06-02").Add(10*time.Hour)))
}
