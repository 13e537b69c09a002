package create_booking

import (
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	createBooking "github.com/suraSGML/meskeremhotelproject-sub000/internal/usecase/create_booking"
)

// PaymentForm выбранный способ оплаты и его реквизиты
type PaymentForm struct {
	Method        string  `json:"method"` // telebirr, cbe_birr, mpesa, bank_transfer, pay_at_hotel
	Phone         *string `json:"phone,omitempty"`
	AccountNumber *string `json:"accountNumber,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	handlers.BookingForm
	Payment PaymentForm `json:"payment"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(rt domain.ResourceType) *createBooking.Request {
	fields := r.Fields()
	if r.Payment.Phone != nil {
		fields[domain.FieldPaymentPhone] = *r.Payment.Phone
	}
	if r.Payment.AccountNumber != nil {
		fields[domain.FieldAccountNumber] = *r.Payment.AccountNumber
	}

	return &createBooking.Request{
		ResourceType:  rt,
		ResourceRef:   r.ResourceRef,
		Fields:        fields,
		Cart:          r.CartItems(),
		PaymentMethod: r.Payment.Method,
	}
}
