package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/pricing"
)

func TestStockCheck_ExactAvailabilityPasses(t *testing.T) {
	in := orderInput()
	in.Quantities = map[string]int{"sku-p": 8}
	in.Stock = map[string]pricing.StockLevel{"sku-p": {Quantity: 10, Reserved: 2}}

	res := pricing.Calculate(in)

	assert.False(t, res.StockCheck.HasIssues)
	assert.Empty(t, res.StockCheck.Issues)
}

func TestStockCheck_ShortfallNamesProductOnce(t *testing.T) {
	in := orderInput()
	in.Quantities = map[string]int{"sku-p": 9}
	in.Stock = map[string]pricing.StockLevel{"sku-p": {Quantity: 10, Reserved: 2}}

	res := pricing.Calculate(in)

	assert.True(t, res.StockCheck.HasIssues)
	require.Len(t, res.StockCheck.Issues, 1)
	assert.Contains(t, res.StockCheck.Issues[0], "Parle Biscuit Carton")
	assert.Contains(t, res.StockCheck.Issues[0], "required 9")
	assert.Contains(t, res.StockCheck.Issues[0], "available 8")
}

// Required quantity counts paid plus free goods: enough stock for the paid
// line alone is still a shortfall once scheme rewards are included.
func TestStockCheck_FreeGoodsCountTowardRequirement(t *testing.T) {
	in := orderInput()
	in.Quantities = map[string]int{"sku-p": 10}
	in.Schemes = []entity.Scheme{activeGlobalScheme("sch-1", "sku-p", 10, "sku-p", 2)}
	in.Stock = map[string]pricing.StockLevel{"sku-p": {Quantity: 11}}

	res := pricing.Calculate(in)

	// 10 paid + 2 free = 12 required, 11 available.
	assert.True(t, res.StockCheck.HasIssues)
	require.Len(t, res.StockCheck.Issues, 1)
	assert.Contains(t, res.StockCheck.Issues[0], "required 12")
}

func TestStockCheck_MissingStockRowMeansZeroAvailable(t *testing.T) {
	in := orderInput()
	in.Quantities = map[string]int{"sku-p": 1}

	res := pricing.Calculate(in)

	assert.True(t, res.StockCheck.HasIssues)
	require.Len(t, res.StockCheck.Issues, 1)
	assert.Contains(t, res.StockCheck.Issues[0], "available 0")
}
