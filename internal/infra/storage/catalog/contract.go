package catalog

import (
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor

// source описание таблицы каталога: откуда брать цену, вместимость и доступность
type source struct {
	table     string
	price     string
	capacity  string
	available string
	basis     domain.UnitBasis
}

var sources = map[domain.ResourceType]source{
	domain.ResourceRoom: {
		table: "rooms", price: "price_per_night", capacity: "COALESCE(capacity, 0)",
		available: "is_available", basis: domain.BasisPerNight,
	},
	domain.ResourceEventSpace: {
		table: "event_spaces", price: "COALESCE(base_price, 0)", capacity: "COALESCE(capacity, 0)",
		available: "is_available", basis: domain.BasisPerEvent,
	},
	domain.ResourceTable: {
		table: "dining_tables", price: "reservation_fee", capacity: "COALESCE(seats, 0)",
		available: "is_available", basis: domain.BasisFlatFee,
	},
	domain.ResourceSpa: {
		table: "spa_services", price: "price", capacity: "0",
		available: "is_available", basis: domain.BasisPerPerson,
	},
	domain.ResourceExperience: {
		table: "experiences", price: "price_per_person", capacity: "COALESCE(max_participants, 0)",
		available: "is_available", basis: domain.BasisPerPerson,
	},
	domain.ResourceTransfer: {
		table: "transfer_vehicles", price: "price", capacity: "COALESCE(max_passengers, 0)",
		available: "is_available", basis: domain.BasisFlatFee,
	},
	domain.ResourceRoomService: {
		table: "menu_items", price: "price", capacity: "0",
		available: "is_available", basis: domain.BasisPerOrder,
	},
}
