package get_payment_methods

import "github.com/suraSGML/meskeremhotelproject-sub000/internal/payment"

// PaymentMethodsResponse способы оплаты для формы бронирования
type PaymentMethodsResponse struct {
	ResourceType string           `json:"resourceType"`
	Methods      []payment.Method `json:"methods"`
}
