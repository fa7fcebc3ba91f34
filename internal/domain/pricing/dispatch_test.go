package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/pricing"
)

func dispatchInput() pricing.Input {
	return pricing.Input{
		Mode:       pricing.ModeDispatch,
		SKUs:       testSKUs(),
		Quantities: map[string]int{},
		Stock:      map[string]pricing.StockLevel{},
		Today:      testToday,
	}
}

func TestDispatch_CatalogValueOnly(t *testing.T) {
	in := dispatchInput()
	in.Quantities = map[string]int{"sku-p": 3, "sku-q": 2}
	in.Stock = map[string]pricing.StockLevel{
		"sku-p": {Quantity: 10},
		"sku-q": {Quantity: 10},
	}

	res := pricing.Calculate(in)

	assert.Equal(t, 400.0, res.TotalValue) // 3×100 + 2×50
	assert.Zero(t, res.Subtotal)
	assert.Zero(t, res.GSTAmount)
	assert.Zero(t, res.GrandTotal)
	require.Len(t, res.Items, 2)
	for _, item := range res.Items {
		assert.False(t, item.IsFreebie)
		assert.False(t, item.IsTierPrice)
	}
}

// Transfers ignore tiering and schemes even when both are present in the
// snapshot: plant -> store pricing is always catalog.
func TestDispatch_IgnoresTiersAndSchemes(t *testing.T) {
	in := dispatchInput()
	in.Quantities = map[string]int{"sku-p": 10}
	in.Schemes = []entity.Scheme{activeGlobalScheme("sch-1", "sku-p", 10, "sku-q", 2)}
	in.TierItems = []entity.PriceTierItem{{TierID: "tier-a", SKUID: "sku-p", Price: 1}}
	in.Stock = map[string]pricing.StockLevel{"sku-p": {Quantity: 100}}

	res := pricing.Calculate(in)

	assert.Equal(t, 1000.0, res.TotalValue)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 100.0, res.Items[0].UnitPrice)
	assert.Empty(t, res.AppliedSchemes)
}

func TestDispatch_RunsStockCheckAgainstSource(t *testing.T) {
	in := dispatchInput()
	in.Quantities = map[string]int{"sku-p": 5, "sku-q": 1}
	in.Stock = map[string]pricing.StockLevel{
		"sku-p": {Quantity: 4},
		"sku-q": {Quantity: 3, Reserved: 3},
	}

	res := pricing.Calculate(in)

	assert.True(t, res.StockCheck.HasIssues)
	assert.Len(t, res.StockCheck.Issues, 2)
}

func TestDispatch_SkipsMalformedLines(t *testing.T) {
	in := dispatchInput()
	in.Quantities = map[string]int{"ghost": 4, "sku-r": 0}

	res := pricing.Calculate(in)

	assert.Empty(t, res.Items)
	assert.Zero(t, res.TotalValue)
	assert.False(t, res.StockCheck.HasIssues)
}
