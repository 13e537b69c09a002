package booking

import (
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// tables таблица бронирований для каждого типа ресурса (общая схема колонок)
var tables = map[domain.ResourceType]string{
	domain.ResourceRoom:        "room_bookings",
	domain.ResourceEventSpace:  "event_space_bookings",
	domain.ResourceTable:       "table_reservations",
	domain.ResourceSpa:         "spa_bookings",
	domain.ResourceExperience:  "experience_bookings",
	domain.ResourceRoomService: "room_service_orders",
	domain.ResourceTransfer:    "airport_transfers",
}

// columns порядок колонок для SELECT и RETURNING, совпадает с scanBooking
var columns = []string{
	"id",
	"resource_ref",
	"contact_name",
	"contact_email",
	"contact_phone",
	"params",
	"total_amount",
	"payment_method",
	"payment_status",
	"transaction_ref",
	"status",
	"notes",
	"version",
	"created_at",
	"updated_at",
}

// TableFor имя таблицы бронирований для типа ресурса
func TableFor(rt domain.ResourceType) (string, error) {
	table, ok := tables[rt]
	if !ok {
		return "", ErrUnknownResourceType
	}
	return table, nil
}
