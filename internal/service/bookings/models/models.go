package models

import (
	"time"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
)

// Request модели

// TransitionRequest запрос персонала на смену статуса бронирования
type TransitionRequest struct {
	ResourceType domain.ResourceType
	BookingID    int64
	Status       string
	Version      *int64 // версия, которую видел персонал (опционально)
	ActorEmail   string // кто меняет статус, для журнала
}

// UpdatePaymentStatusRequest запрос персонала на корректировку статуса оплаты
type UpdatePaymentStatusRequest struct {
	ResourceType  domain.ResourceType
	BookingID     int64
	PaymentStatus string
	Version       *int64
	ActorEmail    string
}

// SetTotalRequest запрос персонала на выставление суммы заявки
type SetTotalRequest struct {
	ResourceType domain.ResourceType
	BookingID    int64
	TotalAmount  money.Money
	Version      *int64
	ActorEmail   string
}

// ListRequest запрос списка бронирований одного типа ресурса
type ListRequest struct {
	ResourceType domain.ResourceType
	Status       *string
	ContactEmail *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		ResourceType: r.ResourceType,
		ContactEmail: r.ContactEmail,
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ParamsResponse параметры бронирования; даты в формате "2024-06-01"
type ParamsResponse struct {
	CheckIn  *string `json:"checkIn,omitempty"`
	CheckOut *string `json:"checkOut,omitempty"`
	Date     *string `json:"date,omitempty"`
	TimeSlot *string `json:"timeSlot,omitempty"`

	Guests       *int `json:"guests,omitempty"`
	PartySize    *int `json:"partySize,omitempty"`
	Participants *int `json:"participants,omitempty"`
	Passengers   *int `json:"passengers,omitempty"`

	EventType  *string           `json:"eventType,omitempty"`
	RoomNumber *string           `json:"roomNumber,omitempty"`
	CartLines  []domain.CartLine `json:"cartLines,omitempty"`

	VehicleClass    *string `json:"vehicleClass,omitempty"`
	PickupLocation  *string `json:"pickupLocation,omitempty"`
	DropoffLocation *string `json:"dropoffLocation,omitempty"`
	FlightNumber    *string `json:"flightNumber,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64          `json:"id"`
	ResourceType   string         `json:"resourceType"`
	ResourceRef    string         `json:"resourceRef"`
	Contact        domain.Contact `json:"contact"`
	Params         ParamsResponse `json:"params"`
	TotalAmount    *money.Money   `json:"totalAmount"` // null, пока заявка на зал не оценена
	Currency       string         `json:"currency"`
	PaymentMethod  string         `json:"paymentMethod"`
	PaymentStatus  string         `json:"paymentStatus"`
	TransactionRef string         `json:"transactionRef"`
	Status         string         `json:"status"`
	Notes          *string        `json:"notes,omitempty"`
	Version        int64          `json:"version"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:             b.ID,
		ResourceType:   string(b.ResourceType),
		ResourceRef:    b.ResourceRef,
		Contact:        b.Contact,
		Params:         fromDomainParams(b.Params),
		TotalAmount:    b.TotalAmount,
		Currency:       money.Currency,
		PaymentMethod:  string(b.PaymentMethod),
		PaymentStatus:  string(b.PaymentStatus),
		TransactionRef: b.TransactionRef,
		Status:         string(b.Status),
		Notes:          b.Notes,
		Version:        b.Version,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

func fromDomainParams(p domain.BookingParams) ParamsResponse {
	return ParamsResponse{
		CheckIn:         formatDate(p.CheckIn),
		CheckOut:        formatDate(p.CheckOut),
		Date:            formatDate(p.Date),
		TimeSlot:        p.TimeSlot,
		Guests:          p.Guests,
		PartySize:       p.PartySize,
		Participants:    p.Participants,
		Passengers:      p.Passengers,
		EventType:       p.EventType,
		RoomNumber:      p.RoomNumber,
		CartLines:       p.CartLines,
		VehicleClass:    p.VehicleClass,
		PickupLocation:  p.PickupLocation,
		DropoffLocation: p.DropoffLocation,
		FlightNumber:    p.FlightNumber,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}
