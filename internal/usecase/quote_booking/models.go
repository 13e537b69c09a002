package quote_booking

import (
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/payment"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/drafts"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
)

// Request текущее состояние формы бронирования
type Request struct {
	ResourceType domain.ResourceType
	ResourceRef  string
	Fields       map[domain.Field]string
	Cart         []drafts.CartItem
}

// Problem первая ошибка формы, которую нужно исправить перед оплатой
type Problem struct {
	Field   domain.Field
	Message string
}

// Response живой расчёт для формы
type Response struct {
	TotalAmount    *money.Money // nil - сумма не считается (заявка на зал) или даты некорректны
	Nights         *int         // только для номеров
	Submittable    bool
	Problem        *Problem
	RequiredFields []domain.Field
	PaymentMethods []payment.Method
}
