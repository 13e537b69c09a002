package bookings

import (
	"time"

	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
)

// Ключи маршрутизации событий в exchange hotel.bookings
const (
	EventBookingCreated  = "booking.created"
	EventStatusChanged   = "booking.status_changed"
	EventPaymentUpdated  = "booking.payment_updated"
	EventBookingTotalSet = "booking.total_set"
)

// BookingCreatedEvent новое бронирование (для уведомления гостя и персонала)
type BookingCreatedEvent struct {
	BookingID      int64        `json:"bookingId"`
	ResourceType   string       `json:"resourceType"`
	ResourceRef    string       `json:"resourceRef"`
	ContactEmail   string       `json:"contactEmail"`
	TotalAmount    *money.Money `json:"totalAmount"`
	PaymentMethod  string       `json:"paymentMethod"`
	PaymentStatus  string       `json:"paymentStatus"`
	TransactionRef string       `json:"transactionRef"`
	Status         string       `json:"status"`
	OccurredAt     time.Time    `json:"occurredAt"`
}

// StatusChangedEvent смена статуса бронирования персоналом
type StatusChangedEvent struct {
	BookingID    int64     `json:"bookingId"`
	ResourceType string    `json:"resourceType"`
	ContactEmail string    `json:"contactEmail"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	Version      int64     `json:"version"`
	Actor        string    `json:"actor,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// PaymentUpdatedEvent корректировка статуса оплаты
type PaymentUpdatedEvent struct {
	BookingID    int64     `json:"bookingId"`
	ResourceType string    `json:"resourceType"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	Version      int64     `json:"version"`
	Actor        string    `json:"actor,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// TotalSetEvent персонал выставил сумму заявки
type TotalSetEvent struct {
	BookingID    int64       `json:"bookingId"`
	ResourceType string      `json:"resourceType"`
	ContactEmail string      `json:"contactEmail"`
	TotalAmount  money.Money `json:"totalAmount"`
	Version      int64       `json:"version"`
	Actor        string      `json:"actor,omitempty"`
	OccurredAt   time.Time   `json:"occurredAt"`
}
