package draft

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/pricing"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"
)

// PaymentDetails реквизиты, которые гость вводит на шаге выбора способа оплаты
type PaymentDetails struct {
	Phone         string
	AccountNumber string
}

// Draft несохранённое бронирование, которое заполняется по шагам формы.
// Все методы работают по значению и возвращают новое состояние.
type Draft struct {
	ResourceType domain.ResourceType
	ResourceRef  string
	Contact      domain.Contact
	Params       domain.BookingParams
	Payment      PaymentDetails
	Notes        *string
	Catalog      *domain.CatalogEntry
}

// New создаёт пустой черновик для ресурса
func New(rt domain.ResourceType, ref string) Draft {
	return Draft{
		ResourceType: rt,
		ResourceRef:  strings.TrimSpace(ref),
	}
}

// WithCatalog привязывает запись каталога, по которой считается цена
func (d Draft) WithCatalog(entry *domain.CatalogEntry) Draft {
	next := d.clone()
	if entry == nil {
		next.Catalog = nil
		return next
	}
	e := *entry
	next.Catalog = &e
	if d.ResourceType == domain.ResourceTransfer {
		name := e.Name
		next.Params.VehicleClass = &name
	}
	return next
}

// Update устанавливает значение поля формы. Пустая строка очищает поле.
func (d Draft) Update(field domain.Field, value string) (Draft, error) {
	next := d.clone()
	value = strings.TrimSpace(value)

	switch field {
	case domain.FieldResourceRef:
		next.ResourceRef = value
	case domain.FieldName:
		next.Contact.Name = value
	case domain.FieldEmail:
		next.Contact.Email = value
	case domain.FieldPhone:
		next.Contact.Phone = optionalString(value)
	case domain.FieldNotes:
		next.Notes = optionalString(value)
	case domain.FieldPaymentPhone:
		next.Payment.Phone = value
	case domain.FieldAccountNumber:
		next.Payment.AccountNumber = value

	case domain.FieldCheckIn, domain.FieldCheckOut, domain.FieldDate:
		t, err := parseDate(field, value)
		if err != nil {
			return d, err
		}
		switch field {
		case domain.FieldCheckIn:
			next.Params.CheckIn = t
		case domain.FieldCheckOut:
			next.Params.CheckOut = t
		default:
			next.Params.Date = t
		}

	case domain.FieldTimeSlot:
		if value != "" {
			if _, err := time.Parse(domain.TimeFormat, value); err != nil {
				return d, domain.NewFieldError(field, ErrInvalidValue)
			}
		}
		next.Params.TimeSlot = optionalString(value)

	case domain.FieldGuests, domain.FieldPartySize, domain.FieldParticipants, domain.FieldPassengers:
		n, err := parseCount(field, value)
		if err != nil {
			return d, err
		}
		switch field {
		case domain.FieldGuests:
			next.Params.Guests = n
		case domain.FieldPartySize:
			next.Params.PartySize = n
		case domain.FieldParticipants:
			next.Params.Participants = n
		default:
			next.Params.Passengers = n
		}

	case domain.FieldEventType:
		next.Params.EventType = optionalString(value)
	case domain.FieldRoomNumber:
		next.Params.RoomNumber = optionalString(value)
	case domain.FieldVehicleClass:
		next.Params.VehicleClass = optionalString(value)
	case domain.FieldPickupLocation:
		next.Params.PickupLocation = optionalString(value)
	case domain.FieldDropoffLocation:
		next.Params.DropoffLocation = optionalString(value)
	case domain.FieldFlightNumber:
		next.Params.FlightNumber = optionalString(value)

	default:
		// корзина и сумма меняются только через свои операции
		return d, domain.NewFieldError(field, fmt.Errorf("%w: field is not editable", ErrInvalidValue))
	}

	return next, nil
}

// AddLine добавляет позицию меню в корзину
func (d Draft) AddLine(line domain.CartLine) Draft {
	next := d.clone()
	next.Params.CartLines = pricing.AddLine(d.Params.CartLines, line)
	return next
}

// SetQuantity меняет количество позиции в корзине
func (d Draft) SetQuantity(itemID string, quantity int) Draft {
	next := d.clone()
	next.Params.CartLines = pricing.SetQuantity(d.Params.CartLines, itemID, quantity)
	return next
}

// RemoveLine удаляет позицию из корзины
func (d Draft) RemoveLine(itemID string) Draft {
	next := d.clone()
	next.Params.CartLines = pricing.RemoveLine(d.Params.CartLines, itemID)
	return next
}

// ComputedTotal итоговая сумма, всегда пересчитывается из каталога и параметров.
// nil означает, что сумма не фиксируется при создании (заявка на зал).
func (d Draft) ComputedTotal() (*money.Money, error) {
	return pricing.ComputeTotal(d.ResourceType, d.Catalog, d.Params)
}

// PaymentField значение платёжного реквизита по имени поля
func (d Draft) PaymentField(field domain.Field) string {
	switch field {
	case domain.FieldPaymentPhone:
		return d.Payment.Phone
	case domain.FieldAccountNumber:
		return d.Payment.AccountNumber
	default:
		return ""
	}
}

// IsSubmittable черновик можно отправлять на оплату
func (d Draft) IsSubmittable(now time.Time) bool {
	return d.Validate(now) == nil
}

func (d Draft) clone() Draft {
	next := d
	next.Params = d.Params.Clone()
	return next
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func parseDate(field domain.Field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return nil, domain.NewFieldError(field, ErrInvalidValue)
	}
	return &t, nil
}

func parseCount(field domain.Field, value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return nil, domain.NewFieldError(field, ErrInvalidValue)
	}
	return &n, nil
}
