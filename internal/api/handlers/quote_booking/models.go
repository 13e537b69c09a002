package quote_booking

import (
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/payment"
	quoteBooking "github.com/suraSGML/meskeremhotelproject-sub000/internal/usecase/quote_booking"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
)

// QuoteRequest текущее состояние формы; реквизиты оплаты не нужны
type QuoteRequest struct {
	handlers.BookingForm
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest(rt domain.ResourceType) *quoteBooking.Request {
	return &quoteBooking.Request{
		ResourceType: rt,
		ResourceRef:  r.ResourceRef,
		Fields:       r.Fields(),
		Cart:         r.CartItems(),
	}
}

// ProblemResponse первое поле, которое мешает отправке формы
type ProblemResponse struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	TotalAmount    *money.Money     `json:"totalAmount"`
	Nights         *int             `json:"nights,omitempty"`
	Submittable    bool             `json:"submittable"`
	Problem        *ProblemResponse `json:"problem,omitempty"`
	RequiredFields []string         `json:"requiredFields"`
	PaymentMethods []payment.Method `json:"paymentMethods"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *quoteBooking.Response) QuoteResponse {
	out := QuoteResponse{
		TotalAmount:    resp.TotalAmount,
		Nights:         resp.Nights,
		Submittable:    resp.Submittable,
		RequiredFields: make([]string, 0, len(resp.RequiredFields)),
		PaymentMethods: resp.PaymentMethods,
	}

	for _, f := range resp.RequiredFields {
		out.RequiredFields = append(out.RequiredFields, string(f))
	}

	if resp.Problem != nil {
		out.Problem = &ProblemResponse{
			Field:   string(resp.Problem.Field),
			Message: resp.Problem.Message,
		}
	}

	return out
}
