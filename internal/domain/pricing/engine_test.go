package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/pricing"
)

var testToday = time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC)

func testSKUs() []entity.SKU {
	return []entity.SKU{
		{ID: "sku-p", Name: "Parle Biscuit Carton", Price: 100, PriceNetCarton: 95.24, GSTPercentage: 5},
		{ID: "sku-q", Name: "Quick Snack Carton", Price: 50, PriceNetCarton: 47.62, GSTPercentage: 5},
		{ID: "sku-r", Name: "Rusk Carton", Price: 200, PriceNetCarton: 169.49, GSTPercentage: 18},
	}
}

func testDistributor() *entity.Distributor {
	return &entity.Distributor{ID: "dist-1", Name: "Sharma Traders", StoreID: "store-1"}
}

func activeGlobalScheme(id, buySKU string, buyQty int, getSKU string, getQty int) entity.Scheme {
	return entity.Scheme{
		ID:          id,
		Description: "Monsoon offer",
		BuySKUID:    buySKU,
		BuyQuantity: buyQty,
		GetSKUID:    getSKU,
		GetQuantity: getQty,
		StartDate:   testToday.AddDate(0, -1, 0),
		EndDate:     testToday.AddDate(0, 1, 0),
		IsGlobal:    true,
	}
}

func orderInput() pricing.Input {
	return pricing.Input{
		Mode:        pricing.ModeOrder,
		Distributor: testDistributor(),
		SKUs:        testSKUs(),
		Quantities:  map[string]int{},
		Stock:       map[string]pricing.StockLevel{},
		Today:       testToday,
	}
}

// The worked reference calculation: 20 cartons of P with a global
// buy-10-get-2-of-Q scheme must yield subtotal 1905, GST 95, grand total
// 2000 and 4 free units of Q applied twice.
func TestCalculate_ReferenceOrder(t *testing.T) {
	in := orderInput()
	in.Quantities = map[string]int{"sku-p": 20}
	in.Schemes = []entity.Scheme{activeGlobalScheme("sch-1", "sku-p", 10, "sku-q", 2)}
	in.Stock = map[string]pricing.StockLevel{
		"sku-p": {Quantity: 100},
		"sku-q": {Quantity: 100},
	}

	res := pricing.Calculate(in)

	assert.Equal(t, 1905.0, res.Subtotal)
	assert.Equal(t, 95.0, res.GSTAmount)
	assert.Equal(t, 2000.0, res.GrandTotal)
	assert.False(t, res.StockCheck.HasIssues)

	require.Len(t, res.Items, 2)
	paid, free := res.Items[0], res.Items[1]
	assert.Equal(t, "sku-p", paid.SKUID)
	assert.Equal(t, 20, paid.Quantity)
	assert.Equal(t, 100.0, paid.UnitPrice)
	assert.False(t, paid.IsFreebie)

	assert.Equal(t, "sku-q", free.SKUID)
	assert.Equal(t, 4, free.Quantity)
	assert.Equal(t, 0.0, free.UnitPrice)
	assert.True(t, free.IsFreebie)
	assert.Contains(t, free.SchemeSource, "Global scheme")

	require.Len(t, res.AppliedSchemes, 1)
	assert.Equal(t, "sch-1", res.AppliedSchemes[0].Scheme.ID)
	assert.Equal(t, 2, res.AppliedSchemes[0].TimesApplied)
}

func TestCalculate_TierOverrideReplacesCatalogPrice(t *testing.T) {
	in := orderInput()
	in.Distributor.PriceTierID = "tier-a"
	in.Quantities = map[string]int{"sku-p": 1, "sku-q": 1}
	in.TierItems = []entity.PriceTierItem{
		{TierID: "tier-a", SKUID: "sku-p", Price: 90},
		{TierID: "tier-b", SKUID: "sku-q", Price: 1}, // other tier, must not apply
	}

	res := pricing.Calculate(in)

	require.Len(t, res.Items, 2)
	for _, item := range res.Items {
		switch item.SKUID {
		case "sku-p":
			assert.Equal(t, 90.0, item.UnitPrice, "tier override must replace catalog price")
			assert.True(t, item.IsTierPrice)
		case "sku-q":
			assert.Equal(t, 50.0, item.UnitPrice, "sku without override keeps catalog price")
			assert.False(t, item.IsTierPrice)
		}
	}
}

// Tier prices are tax-inclusive and must be degrossed for subtotal
// arithmetic; catalog lines use the pre-computed net carton price as-is.
func TestCalculate_NetPriceDegrossing(t *testing.T) {
	in := orderInput()
	in.Distributor.PriceTierID = "tier-a"
	in.Quantities = map[string]int{"sku-p": 1}
	// Net carton price deliberately absurd so the test fails if the tier
	// path ever falls back to it.
	in.SKUs = []entity.SKU{{ID: "sku-p", Name: "P", Price: 100, PriceNetCarton: 999, GSTPercentage: 10}}
	in.TierItems = []entity.PriceTierItem{{TierID: "tier-a", SKUID: "sku-p", Price: 110}}

	res := pricing.Calculate(in)

	// 110 / 1.10 = 100 net, GST 10.
	assert.Equal(t, 100.0, res.Subtotal)
	assert.Equal(t, 10.0, res.GSTAmount)
	assert.Equal(t, 110.0, res.GrandTotal)
}

func TestCalculate_CatalogLineUsesNetCartonNotDerivedNet(t *testing.T) {
	in := orderInput()
	in.Quantities = map[string]int{"sku-r": 1}

	res := pricing.Calculate(in)

	// 169.49 exactly, not 200/1.18 = 169.4915...
	assert.Equal(t, 169.0, res.Subtotal)
	assert.Equal(t, 31.0, res.GSTAmount) // round(169.49 * 0.18) = round(30.5082)
}

// Subtotal and GST round independently before the grand total is formed.
// Rounding the derived sum instead would give 14 here.
func TestCalculate_RoundingOrderIsPreserved(t *testing.T) {
	in := orderInput()
	in.SKUs = []entity.SKU{{ID: "sku-x", Name: "X", Price: 13.83, PriceNetCarton: 10.4, GSTPercentage: 33}}
	in.Quantities = map[string]int{"sku-x": 1}

	res := pricing.Calculate(in)

	assert.Equal(t, 10.0, res.Subtotal)  // round(10.4)
	assert.Equal(t, 3.0, res.GSTAmount)  // round(3.432)
	assert.Equal(t, 13.0, res.GrandTotal)
}

func TestCalculate_MalformedLinesAreSkippedSilently(t *testing.T) {
	in := orderInput()
	in.Quantities = map[string]int{
		"sku-p":   2,
		"unknown": 5,
		"sku-q":   0,
		"sku-r":   -3,
	}
	in.Stock = map[string]pricing.StockLevel{"sku-p": {Quantity: 10}}

	res := pricing.Calculate(in)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "sku-p", res.Items[0].SKUID)
	assert.False(t, res.StockCheck.HasIssues)
}

func TestCalculate_MissingDistributorReturnsZeroedResult(t *testing.T) {
	in := orderInput()
	in.Distributor = nil
	in.Quantities = map[string]int{"sku-p": 10}

	res := pricing.Calculate(in)

	assert.Empty(t, res.Items)
	assert.Zero(t, res.Subtotal)
	assert.Zero(t, res.GSTAmount)
	assert.Zero(t, res.GrandTotal)
	assert.False(t, res.StockCheck.HasIssues)
	assert.Empty(t, res.AppliedSchemes)
}

func TestCalculate_PaidLinesPrecedeFreeLinesAlphabetically(t *testing.T) {
	in := orderInput()
	in.Quantities = map[string]int{"sku-r": 1, "sku-p": 10}
	in.Schemes = []entity.Scheme{activeGlobalScheme("sch-1", "sku-p", 10, "sku-q", 1)}

	res := pricing.Calculate(in)

	require.Len(t, res.Items, 3)
	// Paid group first, alphabetical by name; free group after.
	assert.Equal(t, "sku-p", res.Items[0].SKUID) // Parle Biscuit Carton
	assert.Equal(t, "sku-r", res.Items[1].SKUID) // Rusk Carton
	assert.True(t, res.Items[2].IsFreebie)
	assert.Equal(t, "sku-q", res.Items[2].SKUID)
}

func TestCalculate_IdenticalInputsGiveIdenticalResults(t *testing.T) {
	in := orderInput()
	in.Quantities = map[string]int{"sku-p": 25, "sku-q": 7, "sku-r": 3}
	in.Schemes = []entity.Scheme{
		activeGlobalScheme("sch-1", "sku-p", 10, "sku-q", 2),
		activeGlobalScheme("sch-2", "sku-q", 5, "sku-r", 1),
	}
	in.Stock = map[string]pricing.StockLevel{"sku-p": {Quantity: 5}}

	first := pricing.Calculate(in)
	second := pricing.Calculate(in)

	assert.Equal(t, first, second)
}
