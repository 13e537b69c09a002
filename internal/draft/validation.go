package draft

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/pricing"
)

// Validate проверяет, что черновик готов к оплате.
// Возвращает первую найденную ошибку, привязанную к полю формы (domain.FieldError).
func (d Draft) Validate(now time.Time) error {
	rules, ok := formRules[d.ResourceType]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownResourceType, d.ResourceType)
	}

	// 1. Контакты
	if err := d.validateContact(); err != nil {
		return err
	}

	// 2. Ресурс и запись каталога
	if rules.needsCatalog {
		if d.ResourceRef == "" {
			return domain.NewFieldError(domain.FieldResourceRef, ErrDraftIncomplete)
		}
		if d.Catalog == nil {
			return domain.NewFieldError(domain.FieldResourceRef, ErrCatalogNotLoaded)
		}
		if !d.Catalog.Available {
			return domain.NewFieldError(domain.FieldResourceRef, ErrResourceUnavailable)
		}
	}

	// 3. Обязательные параметры
	for _, field := range rules.fields {
		if !d.hasParam(field) {
			return domain.NewFieldError(field, ErrDraftIncomplete)
		}
	}

	// 4. Даты
	if d.ResourceType.IsDateBearing() {
		if err := d.validateDates(now); err != nil {
			return err
		}
	}

	// 5. Вместимость
	if rules.headcount != "" {
		if err := d.validateHeadcount(rules.headcount); err != nil {
			return err
		}
	}

	// 6. Корзина
	if err := validateCart(d.Params.CartLines); err != nil {
		return err
	}

	// 7. Сумма
	total, err := d.ComputedTotal()
	if err != nil {
		return err
	}
	if !d.ResourceType.IsRequestOnly() && (total == nil || !total.IsPositive()) {
		return domain.NewFieldError(domain.FieldTotalAmount, ErrNonPositiveTotal)
	}

	return nil
}

func (d Draft) validateContact() error {
	if d.Contact.Name == "" {
		return domain.NewFieldError(domain.FieldName, ErrDraftIncomplete)
	}
	if utf8.RuneCountInString(d.Contact.Name) > domain.MaxNameLength {
		return domain.NewFieldError(domain.FieldName, ErrTooLong)
	}
	if d.Contact.Email == "" {
		return domain.NewFieldError(domain.FieldEmail, ErrDraftIncomplete)
	}
	if d.Notes != nil && utf8.RuneCountInString(*d.Notes) > domain.MaxNotesLength {
		return domain.NewFieldError(domain.FieldNotes, ErrTooLong)
	}
	return nil
}

func (d Draft) validateDates(now time.Time) error {
	p := d.Params

	if p.CheckIn != nil && p.CheckOut != nil {
		nights := pricing.Nights(*p.CheckIn, *p.CheckOut)
		if nights == 0 {
			return domain.NewFieldError(domain.FieldCheckOut, pricing.ErrInvalidRange)
		}
		if nights > domain.MaxStayNights {
			return domain.NewFieldError(domain.FieldCheckOut, ErrStayTooLong)
		}
	}

	start := p.StartDate()
	if start == nil {
		return nil
	}
	if isDateInPast(*start, now) {
		field := domain.FieldDate
		if p.CheckIn != nil {
			field = domain.FieldCheckIn
		}
		return domain.NewFieldError(field, ErrDateInPast)
	}
	return nil
}

func (d Draft) validateHeadcount(field domain.Field) error {
	n := d.countParam(field)
	if n == nil {
		return nil
	}
	if *n < 1 {
		return domain.NewFieldError(field, ErrInvalidValue)
	}
	if d.Catalog != nil && d.Catalog.HasCapacityLimit() && *n > d.Catalog.Capacity {
		return domain.NewFieldError(field, fmt.Errorf("%w: max %d", ErrCapacityExceeded, d.Catalog.Capacity))
	}
	return nil
}

func validateCart(lines []domain.CartLine) error {
	if len(lines) > domain.MaxCartLines {
		return domain.NewFieldError(domain.FieldCartLines, ErrCartTooLarge)
	}
	for _, l := range lines {
		if l.Quantity > domain.MaxLineQuantity {
			return domain.NewFieldError(domain.FieldCartLines, ErrCartTooLarge)
		}
	}
	return nil
}

func (d Draft) hasParam(field domain.Field) bool {
	p := d.Params
	switch field {
	case domain.FieldCheckIn:
		return p.CheckIn != nil
	case domain.FieldCheckOut:
		return p.CheckOut != nil
	case domain.FieldDate:
		return p.Date != nil
	case domain.FieldTimeSlot:
		return p.TimeSlot != nil
	case domain.FieldGuests, domain.FieldPartySize, domain.FieldParticipants, domain.FieldPassengers:
		return d.countParam(field) != nil
	case domain.FieldEventType:
		return p.EventType != nil
	case domain.FieldRoomNumber:
		return p.RoomNumber != nil
	case domain.FieldCartLines:
		return len(p.CartLines) > 0
	case domain.FieldVehicleClass:
		return p.VehicleClass != nil
	case domain.FieldPickupLocation:
		return p.PickupLocation != nil
	case domain.FieldDropoffLocation:
		return p.DropoffLocation != nil
	case domain.FieldFlightNumber:
		return p.FlightNumber != nil
	default:
		return false
	}
}

func (d Draft) countParam(field domain.Field) *int {
	switch field {
	case domain.FieldGuests:
		return d.Params.Guests
	case domain.FieldPartySize:
		return d.Params.PartySize
	case domain.FieldParticipants:
		return d.Params.Participants
	case domain.FieldPassengers:
		return d.Params.Passengers
	default:
		return nil
	}
}

// isDateInPast дата раньше сегодняшнего дня (время суток не учитывается)
func isDateInPast(date, now time.Time) bool {
	y, m, dd := date.Date()
	ny, nm, nd := now.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC).Before(time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC))
}
