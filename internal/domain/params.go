package domain

import (
	"time"

	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
)

// Contact guest details captured by every booking form
type Contact struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// CartLine room-service order line
// UnitPrice is copied from the menu item, never taken from the client
type CartLine struct {
	ItemID    string      `json:"itemId"`
	Name      string      `json:"name"`
	UnitPrice money.Money `json:"unitPrice"`
	Quantity  int         `json:"quantity"`
}

// Subtotal returns unitPrice x quantity for the line
func (l CartLine) Subtotal() money.Money {
	return l.UnitPrice.Mul(int64(l.Quantity))
}

// BookingParams resource-specific booking parameters, stored as jsonb
// Only the fields relevant for the resource type are set
type BookingParams struct {
	CheckIn  *time.Time `json:"checkIn,omitempty"`
	CheckOut *time.Time `json:"checkOut,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	TimeSlot *string    `json:"timeSlot,omitempty"`

	Guests       *int `json:"guests,omitempty"`
	PartySize    *int `json:"partySize,omitempty"`
	Participants *int `json:"participants,omitempty"`
	Passengers   *int `json:"passengers,omitempty"`

	EventType *string `json:"eventType,omitempty"`

	RoomNumber *string    `json:"roomNumber,omitempty"`
	CartLines  []CartLine `json:"cartLines,omitempty"`

	VehicleClass    *string `json:"vehicleClass,omitempty"`
	PickupLocation  *string `json:"pickupLocation,omitempty"`
	DropoffLocation *string `json:"dropoffLocation,omitempty"`
	FlightNumber    *string `json:"flightNumber,omitempty"`
}

// Clone returns a deep copy so drafts can be transformed without aliasing
func (p BookingParams) Clone() BookingParams {
	c := p
	if p.CartLines != nil {
		c.CartLines = make([]CartLine, len(p.CartLines))
		copy(c.CartLines, p.CartLines)
	}
	return c
}

// StartDate returns the first calendar day the booking covers
func (p BookingParams) StartDate() *time.Time {
	if p.CheckIn != nil {
		return p.CheckIn
	}
	return p.Date
}
