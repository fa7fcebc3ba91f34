package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/pricing"
)

func freeQuantityOf(res pricing.Result, skuID string) int {
	for _, item := range res.Items {
		if item.IsFreebie && item.SKUID == skuID {
			return item.Quantity
		}
	}
	return 0
}

func TestSchemes_ThresholdBoundary(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		wantFree int
	}{
		{"one below threshold earns nothing", 9, 0},
		{"exact threshold earns one reward", 10, 2},
		{"double threshold earns two rewards", 20, 4},
		{"remainder does not earn partial reward", 29, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := orderInput()
			in.Quantities = map[string]int{"sku-p": tc.quantity}
			in.Schemes = []entity.Scheme{activeGlobalScheme("sch-1", "sku-p", 10, "sku-q", 2)}

			res := pricing.Calculate(in)

			assert.Equal(t, tc.wantFree, freeQuantityOf(res, "sku-q"))
		})
	}
}

// Two independently-eligible schemes on the same buy SKU both trigger and
// their rewards sum; matching never short-circuits after the first scheme.
func TestSchemes_StackAdditivelyOnSameBuySKU(t *testing.T) {
	in := orderInput()
	in.Quantities = map[string]int{"sku-p": 10}
	storeScheme := activeGlobalScheme("sch-store", "sku-p", 5, "sku-q", 1)
	storeScheme.IsGlobal = false
	storeScheme.StoreID = "store-1"
	in.Schemes = []entity.Scheme{
		activeGlobalScheme("sch-global", "sku-p", 10, "sku-q", 2),
		storeScheme,
	}

	res := pricing.Calculate(in)

	// Global: 10/10 = 1×2. Store: 10/5 = 2×1. Aggregated into one free line.
	assert.Equal(t, 4, freeQuantityOf(res, "sku-q"))
	require.Len(t, res.AppliedSchemes, 2)
	counts := map[string]int{}
	for _, a := range res.AppliedSchemes {
		counts[a.Scheme.ID] = a.TimesApplied
	}
	assert.Equal(t, 1, counts["sch-global"])
	assert.Equal(t, 2, counts["sch-store"])
}

// Identical duplicate scheme rows (same id) count once; distinct ids with
// identical terms stack. The stacking of equivalent rows is the observed
// contract, preserved rather than fixed.
func TestSchemes_DeduplicateByIDOnly(t *testing.T) {
	in := orderInput()
	in.Quantities = map[string]int{"sku-p": 10}
	s := activeGlobalScheme("sch-1", "sku-p", 10, "sku-q", 2)
	twin := activeGlobalScheme("sch-2", "sku-p", 10, "sku-q", 2)
	in.Schemes = []entity.Scheme{s, s, twin}

	res := pricing.Calculate(in)

	assert.Equal(t, 4, freeQuantityOf(res, "sku-q"), "same row twice counts once, a twin id stacks")
	assert.Len(t, res.AppliedSchemes, 2)
}

func TestSchemes_ScopeFiltering(t *testing.T) {
	otherDistributor := activeGlobalScheme("sch-dist", "sku-p", 1, "sku-q", 1)
	otherDistributor.IsGlobal = false
	otherDistributor.DistributorID = "dist-2"

	otherStore := activeGlobalScheme("sch-store", "sku-p", 1, "sku-q", 1)
	otherStore.IsGlobal = false
	otherStore.StoreID = "store-9"

	ownScheme := activeGlobalScheme("sch-own", "sku-p", 1, "sku-r", 1)
	ownScheme.IsGlobal = false
	ownScheme.DistributorID = "dist-1"

	in := orderInput()
	in.Quantities = map[string]int{"sku-p": 1}
	in.Schemes = []entity.Scheme{otherDistributor, otherStore, ownScheme}

	res := pricing.Calculate(in)

	assert.Zero(t, freeQuantityOf(res, "sku-q"), "schemes scoped to other distributors/stores must not trigger")
	assert.Equal(t, 1, freeQuantityOf(res, "sku-r"))
}

func TestSchemes_DateWindowInclusiveAtDayGranularity(t *testing.T) {
	endsToday := activeGlobalScheme("sch-today", "sku-p", 1, "sku-q", 1)
	endsToday.EndDate = time.Date(testToday.Year(), testToday.Month(), testToday.Day(), 0, 0, 0, 0, time.UTC)

	endedYesterday := activeGlobalScheme("sch-old", "sku-p", 1, "sku-r", 1)
	endedYesterday.EndDate = testToday.AddDate(0, 0, -1)

	startsToday := activeGlobalScheme("sch-new", "sku-q", 1, "sku-r", 1)
	startsToday.StartDate = time.Date(testToday.Year(), testToday.Month(), testToday.Day(), 23, 59, 0, 0, time.UTC)

	in := orderInput()
	in.Quantities = map[string]int{"sku-p": 1, "sku-q": 1}
	in.Schemes = []entity.Scheme{endsToday, endedYesterday, startsToday}

	res := pricing.Calculate(in)

	assert.Equal(t, 1, freeQuantityOf(res, "sku-q"), "endDate = today is still eligible")
	// sch-old is out of window; sch-new starts today (later clock time is
	// irrelevant at day granularity) and rewards sku-r.
	assert.Equal(t, 1, freeQuantityOf(res, "sku-r"))
}

func TestSchemes_StoppedSchemeNeverEligible(t *testing.T) {
	stopped := activeGlobalScheme("sch-1", "sku-p", 1, "sku-q", 1)
	stoppedAt := testToday.AddDate(0, 0, -2)
	stopped.StoppedDate = &stoppedAt
	stopped.StoppedBy = "admin"

	in := orderInput()
	in.Quantities = map[string]int{"sku-p": 5}
	in.Schemes = []entity.Scheme{stopped}

	res := pricing.Calculate(in)

	assert.Zero(t, freeQuantityOf(res, "sku-q"))
	assert.Empty(t, res.AppliedSchemes)
}

func TestSchemes_UnknownSKUReferencesInvalidateScheme(t *testing.T) {
	badBuy := activeGlobalScheme("sch-1", "sku-missing", 1, "sku-q", 1)
	badGet := activeGlobalScheme("sch-2", "sku-p", 1, "sku-missing", 1)

	in := orderInput()
	in.Quantities = map[string]int{"sku-p": 5}
	in.Schemes = []entity.Scheme{badBuy, badGet}

	res := pricing.Calculate(in)

	assert.Empty(t, res.AppliedSchemes)
	for _, item := range res.Items {
		assert.False(t, item.IsFreebie)
	}
}

func TestSchemes_AggregatedFreeLineKeepsLastSourceLabel(t *testing.T) {
	first := activeGlobalScheme("sch-1", "sku-p", 10, "sku-q", 1)
	second := activeGlobalScheme("sch-2", "sku-p", 10, "sku-q", 1)
	second.IsGlobal = false
	second.DistributorID = "dist-1"
	second.Description = "Loyalty bonus"

	in := orderInput()
	in.Quantities = map[string]int{"sku-p": 10}
	in.Schemes = []entity.Scheme{first, second}

	res := pricing.Calculate(in)

	assert.Equal(t, 2, freeQuantityOf(res, "sku-q"))
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Loyalty bonus (Distributor scheme)", res.Items[1].SchemeSource)
}
