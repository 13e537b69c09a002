package domain

import (
	"fmt"
	"time"
)

// PaymentMethod Ethiopian payment options offered at checkout
type PaymentMethod string

const (
	MethodTelebirr     PaymentMethod = "telebirr"
	MethodCBEBirr      PaymentMethod = "cbe_birr"
	MethodMPesa        PaymentMethod = "mpesa"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodPayAtHotel   PaymentMethod = "pay_at_hotel"
)

// ParsePaymentMethod converts a string to a PaymentMethod
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case MethodTelebirr, MethodCBEBirr, MethodMPesa, MethodBankTransfer, MethodPayAtHotel:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
	}
}

// IsCash returns true for the in-person method where no money moves at checkout
func (m PaymentMethod) IsCash() bool {
	return m == MethodPayAtHotel
}

// SettlementOutcome result of a payment settlement, consumed once to create a booking
type SettlementOutcome struct {
	Method         PaymentMethod
	TransactionRef string
	PaymentStatus  PaymentStatus
	SettledAt      time.Time
}

// Consistent reports whether the payment fields agree with each other
func (o SettlementOutcome) Consistent() bool {
	if o.TransactionRef == "" {
		return false
	}
	if o.Method.IsCash() && o.PaymentStatus == PaymentPaid {
		return false
	}
	return true
}
