package domain

import (
	"fmt"
	"time"

	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
)

// BookingStatus lifecycle state of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// validTransitions booking state machine; completed and cancelled are terminal
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseBookingStatus converts a string to a BookingStatus
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

// IsValid returns true if the status is a recognized booking status
func (s BookingStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo returns true if the state machine allows s -> target
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible
func (s BookingStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// PaymentStatus is independent of the booking status
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

var validPaymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentUnpaid:  {PaymentPending, PaymentPaid},
	PaymentPending: {PaymentPaid},
	PaymentPaid:    {},
}

// ParsePaymentStatus converts a string to a PaymentStatus
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if _, ok := validPaymentTransitions[status]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPaymentStatus, s)
	}
	return status, nil
}

// CanTransitionTo returns true if a payment correction s -> target is allowed
// paid is final, so a payment is never applied twice
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	for _, allowed := range validPaymentTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// InitialStatusFor returns the booking status a new booking starts in
func InitialStatusFor(payment PaymentStatus) BookingStatus {
	if payment == PaymentPaid {
		return StatusConfirmed
	}
	return StatusPending
}

// Booking durable booking record; one table per resource type, shared shape
type Booking struct {
	ID             int64
	ResourceType   ResourceType
	ResourceRef    string
	Contact        Contact
	Params         BookingParams
	TotalAmount    *money.Money // nil while an event-space request is unpriced
	PaymentMethod  PaymentMethod
	PaymentStatus  PaymentStatus
	TransactionRef string
	Status         BookingStatus
	Notes          *string
	Version        int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is not in a terminal state
func (b *Booking) IsActive() bool {
	return !b.Status.IsTerminal()
}

// IsPriced returns true if the booking carries a committed total
func (b *Booking) IsPriced() bool {
	return b.TotalAmount != nil
}

// BookingsFilter predicate for booking list reads
type BookingsFilter struct {
	ResourceType ResourceType   // required
	Status       *BookingStatus // optional
	ContactEmail *string        // optional
}
