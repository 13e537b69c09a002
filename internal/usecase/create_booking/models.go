package create_booking

import (
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/drafts"
)

// Request модель запроса на оформление бронирования
type Request struct {
	ResourceType  domain.ResourceType
	ResourceRef   string                  // ID ресурса в каталоге (пусто для room service)
	Fields        map[domain.Field]string // поля формы: контакты, параметры, реквизиты оплаты
	Cart          []drafts.CartItem       // корзина room service
	PaymentMethod string                  // выбранный способ оплаты
}
