package drafts

import "github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"

// CartItem позиция корзины из запроса: только идентификатор и количество, цена берётся из меню
type CartItem struct {
	ItemID   string
	Quantity int
}

// Request поля формы бронирования
type Request struct {
	ResourceType domain.ResourceType
	ResourceRef  string
	Fields       map[domain.Field]string // значения полей формы как строки
	Cart         []CartItem              // только для room service
}
