package entity

import "time"

// Scheme is a buy-X-get-Y-free promotional rule with an inclusive calendar
// date window and exactly one scope: global, store or distributor. A stopped
// scheme is never eligible again, regardless of its date window.
type Scheme struct {
	ID            string
	Description   string
	BuySKUID      string
	BuyQuantity   int
	GetSKUID      string
	GetQuantity   int
	StartDate     time.Time
	EndDate       time.Time
	IsGlobal      bool
	DistributorID string // set iff distributor-scoped
	StoreID       string // set iff store-scoped
	StoppedBy     string
	StoppedDate   *time.Time
}

// Stopped reports whether the scheme was manually stopped.
func (s Scheme) Stopped() bool {
	return s.StoppedDate != nil
}

// ScopeLabel is the human-readable scope shown on free order lines.
func (s Scheme) ScopeLabel() string {
	switch {
	case s.IsGlobal:
		return "Global scheme"
	case s.DistributorID != "":
		return "Distributor scheme"
	case s.StoreID != "":
		return "Store scheme"
	}
	return "Scheme"
}
