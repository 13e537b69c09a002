package handlers

import (
	"strconv"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/drafts"
)

// ContactForm контакты гостя
type ContactForm struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// ParamsForm параметры бронирования; используются только поля своего типа ресурса
type ParamsForm struct {
	CheckIn  *string `json:"checkIn,omitempty"`  // "2024-06-01"
	CheckOut *string `json:"checkOut,omitempty"` // "2024-06-04"
	Date     *string `json:"date,omitempty"`
	TimeSlot *string `json:"timeSlot,omitempty"` // "10:00"

	Guests       *int `json:"guests,omitempty"`
	PartySize    *int `json:"partySize,omitempty"`
	Participants *int `json:"participants,omitempty"`
	Passengers   *int `json:"passengers,omitempty"`

	EventType       *string `json:"eventType,omitempty"`
	RoomNumber      *string `json:"roomNumber,omitempty"`
	VehicleClass    *string `json:"vehicleClass,omitempty"`
	PickupLocation  *string `json:"pickupLocation,omitempty"`
	DropoffLocation *string `json:"dropoffLocation,omitempty"`
	FlightNumber    *string `json:"flightNumber,omitempty"`
}

// CartItemForm позиция корзины room service; цену клиент не передаёт
type CartItemForm struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// BookingForm общая часть форм бронирования и расчёта суммы
type BookingForm struct {
	ResourceRef string         `json:"resourceRef"`
	Contact     ContactForm    `json:"contact"`
	Params      ParamsForm     `json:"params"`
	Cart        []CartItemForm `json:"cart,omitempty"`
	Notes       *string        `json:"notes,omitempty"`
}

// Fields поля формы в виде, который понимает черновик
func (f *BookingForm) Fields() map[domain.Field]string {
	fields := map[domain.Field]string{
		domain.FieldName:  f.Contact.Name,
		domain.FieldEmail: f.Contact.Email,
	}

	setString := func(field domain.Field, v *string) {
		if v != nil {
			fields[field] = *v
		}
	}
	setInt := func(field domain.Field, v *int) {
		if v != nil {
			fields[field] = strconv.Itoa(*v)
		}
	}

	setString(domain.FieldPhone, f.Contact.Phone)
	setString(domain.FieldNotes, f.Notes)

	p := f.Params
	setString(domain.FieldCheckIn, p.CheckIn)
	setString(domain.FieldCheckOut, p.CheckOut)
	setString(domain.FieldDate, p.Date)
	setString(domain.FieldTimeSlot, p.TimeSlot)
	setInt(domain.FieldGuests, p.Guests)
	setInt(domain.FieldPartySize, p.PartySize)
	setInt(domain.FieldParticipants, p.Participants)
	setInt(domain.FieldPassengers, p.Passengers)
	setString(domain.FieldEventType, p.EventType)
	setString(domain.FieldRoomNumber, p.RoomNumber)
	setString(domain.FieldVehicleClass, p.VehicleClass)
	setString(domain.FieldPickupLocation, p.PickupLocation)
	setString(domain.FieldDropoffLocation, p.DropoffLocation)
	setString(domain.FieldFlightNumber, p.FlightNumber)

	return fields
}

// CartItems корзина для сборки черновика
func (f *BookingForm) CartItems() []drafts.CartItem {
	if len(f.Cart) == 0 {
		return nil
	}
	items := make([]drafts.CartItem, 0, len(f.Cart))
	for _, item := range f.Cart {
		items = append(items, drafts.CartItem{ItemID: item.ItemID, Quantity: item.Quantity})
	}
	return items
}
