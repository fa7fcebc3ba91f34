// Package pricing implements the order pricing and promotion calculation
// engine: per-line unit prices (tier override or catalog), buy-X-get-Y free
// goods stacked across eligible schemes, GST totals and stock-sufficiency
// diagnostics. The engine is a pure function of its inputs; it performs no
// I/O, mutates nothing it is given, and is cheap enough to re-run on every
// input change.
package pricing

import (
	"time"

	"github.com/jhoicas/distributor-api/internal/domain/entity"
)

// Mode selects the calculation path.
type Mode string

const (
	// ModeOrder prices a distributor sale: tier overrides, schemes, GST.
	ModeOrder Mode = "order"
	// ModeDispatch prices a plant -> store stock transfer: catalog price
	// only, no tiering, no schemes.
	ModeDispatch Mode = "dispatch"
)

// StockLevel is the on-hand/reserved snapshot for one SKU at the source
// location.
type StockLevel struct {
	Quantity int
	Reserved int
}

// Input is the full read-only snapshot a calculation runs over. The engine
// filters Schemes and TierItems itself; Today is the date used for scheme
// eligibility (day granularity) so results are reproducible.
type Input struct {
	Mode        Mode
	Distributor *entity.Distributor // required in ModeOrder
	Quantities  map[string]int      // skuID -> requested paid quantity
	SKUs        []entity.SKU
	Schemes     []entity.Scheme
	TierItems   []entity.PriceTierItem
	Stock       map[string]StockLevel // skuID -> level at the source location
	Today       time.Time
}

// DisplayItem is one computed order line. UnitPrice is the tax-inclusive
// price shown on the receipt; free lines carry zero and a SchemeSource label.
type DisplayItem struct {
	SKUID        string  `json:"skuId"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	IsFreebie    bool    `json:"isFreebie"`
	IsTierPrice  bool    `json:"isTierPrice"`
	SchemeSource string  `json:"schemeSource,omitempty"`
}

// AppliedScheme records that a scheme triggered, with its cumulative
// times-applied count, for audit display.
type AppliedScheme struct {
	Scheme       entity.Scheme `json:"scheme"`
	TimesApplied int           `json:"timesApplied"`
}

// StockCheck is the stock-sufficiency diagnostic. The engine never blocks on
// a shortfall; it reports issues for the caller to act on.
type StockCheck struct {
	HasIssues bool     `json:"hasIssues"`
	Issues    []string `json:"issues"`
}

// Result is the computed calculation: paid lines followed by free lines,
// rounded totals (order mode), catalog total value (dispatch mode), the
// stock diagnostic and the applied-scheme audit list.
type Result struct {
	Items          []DisplayItem   `json:"displayItems"`
	Subtotal       float64         `json:"subtotal"`
	GSTAmount      float64         `json:"gstAmount"`
	GrandTotal     float64         `json:"grandTotal"`
	TotalValue     float64         `json:"totalValue"`
	StockCheck     StockCheck      `json:"stockCheck"`
	AppliedSchemes []AppliedScheme `json:"appliedSchemes"`
}
