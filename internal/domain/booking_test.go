package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

func TestBookingStatus_TransitionTable(t *testing.T) {
	allowed := map[[2]BookingStatus]bool{
		{StatusPending, StatusConfirmed}:   true,
		{StatusPending, StatusCancelled}:   true,
		{StatusConfirmed, StatusCompleted}: true,
		{StatusConfirmed, StatusCancelled}: true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			got := from.CanTransitionTo(to)
			assert.Equal(t, allowed[[2]BookingStatus{from, to}], got, "%s -> %s", from, to)
		}
	}
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, s)

	_, err = ParseBookingStatus("no_show")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestPaymentStatus_PaidIsFinal(t *testing.T) {
	assert.True(t, PaymentUnpaid.CanTransitionTo(PaymentPaid))
	assert.True(t, PaymentUnpaid.CanTransitionTo(PaymentPending))
	assert.True(t, PaymentPending.CanTransitionTo(PaymentPaid))
	assert.False(t, PaymentPaid.CanTransitionTo(PaymentPaid))
	assert.False(t, PaymentPaid.CanTransitionTo(PaymentPending))
	assert.False(t, PaymentPending.CanTransitionTo(PaymentUnpaid))
}

func TestInitialStatusFor(t *testing.T) {
	assert.Equal(t, StatusConfirmed, InitialStatusFor(PaymentPaid))
	assert.Equal(t, StatusPending, InitialStatusFor(PaymentPending))
	assert.Equal(t, StatusPending, InitialStatusFor(PaymentUnpaid))
}

func TestSettlementOutcome_Consistent(t *testing.T) {
	assert.True(t, SettlementOutcome{Method: MethodTelebirr, TransactionRef: "TX-1", PaymentStatus: PaymentPaid}.Consistent())
	assert.False(t, SettlementOutcome{Method: MethodTelebirr, PaymentStatus: PaymentPaid}.Consistent())
	assert.False(t, SettlementOutcome{Method: MethodPayAtHotel, TransactionRef: "TX-2", PaymentStatus: PaymentPaid}.Consistent())
}

func TestParseResourceType(t *testing.T) {
	for _, rt := range AllResourceTypes {
		parsed, err := ParseResourceType(string(rt))
		require.NoError(t, err)
		assert.Equal(t, rt, parsed)
	}

	_, err := ParseResourceType("parking")
	assert.ErrorIs(t, err, ErrUnknownResourceType)
	assert.False(t, ResourceRoomService.IsDateBearing())
	assert.True(t, ResourceEventSpace.IsRequestOnly())
}

func TestParams_CloneDoesNotAliasCart(t *testing.T) {
	p := BookingParams{CartLines: []CartLine{{ItemID: "a", Quantity: 1}}}
	c := p.Clone()
	c.CartLines[0].Quantity = 5

	assert.Equal(t, 1, p.CartLines[0].Quantity)
}
