package domain

import "github.com/suraSGML/meskeremhotelproject-sub000/pkg/money"

// UnitBasis describes what the catalog unit price is charged for
type UnitBasis string

const (
	BasisPerNight  UnitBasis = "per_night"
	BasisPerEvent  UnitBasis = "per_event"
	BasisFlatFee   UnitBasis = "flat_fee"
	BasisPerPerson UnitBasis = "per_person"
	BasisPerOrder  UnitBasis = "per_order"
)

// CatalogEntry read-only pricing input owned by the record store
// (rooms, event spaces, dining tables, spa services, experiences, transfer vehicles, menu items)
type CatalogEntry struct {
	ID        string
	Name      string
	UnitPrice money.Money
	Basis     UnitBasis
	Capacity  int // 0 = no limit
	Available bool
}

// HasCapacityLimit returns true if the entry limits guests/participants/passengers
func (c *CatalogEntry) HasCapacityLimit() bool {
	return c.Capacity > 0
}
