package pricing

import (
	"fmt"
	"time"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
)

// pricer расчёт итоговой суммы для одного типа ресурса
// nil без ошибки означает, что сумма не фиксируется при создании (заявка)
type pricer func(entry *domain.CatalogEntry, params domain.BookingParams) (*money.Money, error)

var pricers = map[domain.ResourceType]pricer{
	domain.ResourceRoom:        roomTotal,
	domain.ResourceEventSpace:  eventSpaceTotal,
	domain.ResourceTable:       flatFeeTotal,
	domain.ResourceSpa:         spaTotal,
	domain.ResourceExperience:  experienceTotal,
	domain.ResourceTransfer:    flatFeeTotal,
	domain.ResourceRoomService: roomServiceTotal,
}

// ComputeTotal рассчитывает итоговую сумму бронирования по данным каталога и параметрам
func ComputeTotal(rt domain.ResourceType, entry *domain.CatalogEntry, params domain.BookingParams) (*money.Money, error) {
	fn, ok := pricers[rt]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedResource, rt)
	}
	return fn(entry, params)
}

// Nights количество ночей между датами заезда и выезда (по календарным дням, не меньше 0)
func Nights(checkIn, checkOut time.Time) int {
	in := dateOnly(checkIn)
	out := dateOnly(checkOut)
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// roomTotal ночи x цена за ночь
func roomTotal(entry *domain.CatalogEntry, params domain.BookingParams) (*money.Money, error) {
	if entry == nil {
		return nil, ErrMissingCatalogEntry
	}
	if params.CheckIn == nil {
		return nil, domain.NewFieldError(domain.FieldCheckIn, ErrMissingParameter)
	}
	if params.CheckOut == nil {
		return nil, domain.NewFieldError(domain.FieldCheckOut, ErrMissingParameter)
	}

	nights := Nights(*params.CheckIn, *params.CheckOut)
	if nights == 0 {
		return nil, domain.NewFieldError(domain.FieldCheckOut, ErrInvalidRange)
	}

	total := entry.UnitPrice.Mul(int64(nights))
	return &total, nil
}

// eventSpaceTotal заявка на зал - сумму позже выставляет персонал
func eventSpaceTotal(_ *domain.CatalogEntry, _ domain.BookingParams) (*money.Money, error) {
	return nil, nil
}

// flatFeeTotal фиксированная цена: сбор за столик или тариф класса автомобиля,
// не зависит от количества гостей/пассажиров
func flatFeeTotal(entry *domain.CatalogEntry, _ domain.BookingParams) (*money.Money, error) {
	if entry == nil {
		return nil, ErrMissingCatalogEntry
	}
	total := entry.UnitPrice
	return &total, nil
}

// spaTotal цена услуги на одного человека
func spaTotal(entry *domain.CatalogEntry, _ domain.BookingParams) (*money.Money, error) {
	if entry == nil {
		return nil, ErrMissingCatalogEntry
	}
	total := entry.UnitPrice.Mul(domain.DefaultSpaHeadcount)
	return &total, nil
}

// experienceTotal цена за человека x количество участников
func experienceTotal(entry *domain.CatalogEntry, params domain.BookingParams) (*money.Money, error) {
	if entry == nil {
		return nil, ErrMissingCatalogEntry
	}
	if params.Participants == nil {
		return nil, domain.NewFieldError(domain.FieldParticipants, ErrMissingParameter)
	}
	if *params.Participants < 1 {
		return nil, domain.NewFieldError(domain.FieldParticipants, ErrInvalidQuantity)
	}

	total := entry.UnitPrice.Mul(int64(*params.Participants))
	return &total, nil
}

// roomServiceTotal сумма по строкам корзины
func roomServiceTotal(_ *domain.CatalogEntry, params domain.BookingParams) (*money.Money, error) {
	total := CartTotal(params.CartLines)
	return &total, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
