package draft

import "github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"

// requirements правила формы для одного типа ресурса
type requirements struct {
	// needsCatalog ресурс выбирается из каталога (для room service цены берутся из меню)
	needsCatalog bool
	// fields обязательные параметры бронирования
	fields []domain.Field
	// headcount поле с количеством людей, которое сравнивается с вместимостью
	headcount domain.Field
}

var formRules = map[domain.ResourceType]requirements{
	domain.ResourceRoom: {
		needsCatalog: true,
		fields:       []domain.Field{domain.FieldCheckIn, domain.FieldCheckOut, domain.FieldGuests},
		headcount:    domain.FieldGuests,
	},
	domain.ResourceEventSpace: {
		needsCatalog: true,
		fields:       []domain.Field{domain.FieldDate, domain.FieldGuests, domain.FieldEventType},
		headcount:    domain.FieldGuests,
	},
	domain.ResourceTable: {
		needsCatalog: true,
		fields:       []domain.Field{domain.FieldDate, domain.FieldTimeSlot, domain.FieldPartySize},
		headcount:    domain.FieldPartySize,
	},
	domain.ResourceSpa: {
		needsCatalog: true,
		fields:       []domain.Field{domain.FieldDate, domain.FieldTimeSlot},
	},
	domain.ResourceExperience: {
		needsCatalog: true,
		fields:       []domain.Field{domain.FieldDate, domain.FieldParticipants},
		headcount:    domain.FieldParticipants,
	},
	domain.ResourceTransfer: {
		needsCatalog: true,
		fields: []domain.Field{
			domain.FieldDate, domain.FieldTimeSlot, domain.FieldPassengers,
			domain.FieldPickupLocation, domain.FieldDropoffLocation,
		},
		headcount: domain.FieldPassengers,
	},
	domain.ResourceRoomService: {
		fields: []domain.Field{domain.FieldRoomNumber, domain.FieldCartLines},
	},
}

// RequiredFields обязательные параметры формы для типа ресурса (без контактов)
func RequiredFields(rt domain.ResourceType) []domain.Field {
	rules, ok := formRules[rt]
	if !ok {
		return nil
	}
	out := make([]domain.Field, len(rules.fields))
	copy(out, rules.fields)
	return out
}

// NeedsCatalog ресурс выбирается по записи каталога, цена берётся из неё
func NeedsCatalog(rt domain.ResourceType) bool {
	return formRules[rt].needsCatalog
}
