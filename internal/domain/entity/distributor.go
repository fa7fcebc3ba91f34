package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Distributor is a buyer account. PriceTierID and StoreID are optional;
// HasSpecialSchemes marks accounts that may receive distributor-scoped
// promotional schemes.
type Distributor struct {
	ID                string
	Name              string
	Phone             string
	State             string
	Area              string
	CreditLimit       decimal.Decimal
	GSTIN             string
	BillingAddress    string
	HasSpecialSchemes bool
	ASMName           string
	ExecutiveName     string
	WalletBalance     decimal.Decimal
	DateAdded         time.Time
	PriceTierID       string // empty = catalog pricing
	StoreID           string // empty = served directly by the plant
}

// SourceLocationID is the stock location orders for this distributor draw
// from: the assigned store, or the plant when unassigned.
func (d Distributor) SourceLocationID() string {
	if d.StoreID != "" {
		return d.StoreID
	}
	return LocationPlant
}
