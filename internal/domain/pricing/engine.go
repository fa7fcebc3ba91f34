package pricing

import (
	"math"
	"sort"
)

// snapshot holds the per-call read-only indexes built from the input. Indexes
// are constructed once per invocation and never shared across calculations.
type snapshot struct {
	in        Input
	skuByID   map[string]SKUIndexEntry
	tierPrice map[string]float64 // skuID -> override, only for the distributor's tier
}

// SKUIndexEntry is the catalog entry the engine resolves lines against.
type SKUIndexEntry struct {
	Name           string
	Price          float64
	PriceNetCarton float64
	GSTPercentage  float64
}

func newSnapshot(in Input) snapshot {
	s := snapshot{
		in:        in,
		skuByID:   make(map[string]SKUIndexEntry, len(in.SKUs)),
		tierPrice: map[string]float64{},
	}
	for _, sku := range in.SKUs {
		s.skuByID[sku.ID] = SKUIndexEntry{
			Name:           sku.Name,
			Price:          sku.Price,
			PriceNetCarton: sku.PriceNetCarton,
			GSTPercentage:  sku.GSTPercentage,
		}
	}
	if in.Mode == ModeOrder && in.Distributor != nil && in.Distributor.PriceTierID != "" {
		for _, item := range in.TierItems {
			if item.TierID == in.Distributor.PriceTierID {
				s.tierPrice[item.SKUID] = item.Price
			}
		}
	}
	return s
}

// Calculate runs the engine. It always returns a well-formed Result: lines
// referencing unknown SKUs or non-positive quantities are skipped, stock
// shortfalls are reported as diagnostics, and a missing distributor in order
// mode yields an empty zeroed result.
func Calculate(in Input) Result {
	snap := newSnapshot(in)
	if in.Mode == ModeDispatch {
		return calculateDispatch(snap)
	}
	if in.Distributor == nil {
		return emptyResult()
	}
	return calculateOrder(snap)
}

func calculateOrder(snap snapshot) Result {
	var subtotal, gstAmount float64
	paid := make([]DisplayItem, 0, len(snap.in.Quantities))
	required := map[string]int{}

	for _, skuID := range sortedQuantityKeys(snap.in.Quantities) {
		qty := snap.in.Quantities[skuID]
		if qty <= 0 {
			continue
		}
		sku, ok := snap.skuByID[skuID]
		if !ok {
			continue
		}

		unitPrice := sku.Price
		tiered := false
		if override, ok := snap.tierPrice[skuID]; ok {
			unitPrice = override
			tiered = true
		}
		// Tier prices are tax-inclusive and must be degrossed for subtotal
		// arithmetic; the catalog net carton price is already tax-exclusive.
		netPrice := sku.PriceNetCarton
		if tiered {
			netPrice = unitPrice / (1 + sku.GSTPercentage/100)
		}

		lineNet := float64(qty) * netPrice
		subtotal += lineNet
		gstAmount += lineNet * sku.GSTPercentage / 100

		paid = append(paid, DisplayItem{
			SKUID:       skuID,
			Name:        sku.Name,
			Quantity:    qty,
			UnitPrice:   unitPrice,
			IsTierPrice: tiered,
		})
		required[skuID] += qty
	}

	free, applied := resolveSchemes(snap)
	for _, f := range free {
		required[f.SKUID] += f.Quantity
	}

	sortByName(paid)
	sortByName(free)
	items := append(paid, free...)

	// Subtotal and GST are rounded independently before summing; deriving one
	// from the other shifts the grand total by one minor unit in edge cases.
	finalSubtotal := math.Round(subtotal)
	finalGST := math.Round(gstAmount)

	return Result{
		Items:          items,
		Subtotal:       finalSubtotal,
		GSTAmount:      finalGST,
		GrandTotal:     finalSubtotal + finalGST,
		StockCheck:     checkStock(snap, required),
		AppliedSchemes: applied,
	}
}

// calculateDispatch prices a stock transfer: catalog unit prices, no tiering,
// no schemes, total catalog value instead of subtotal/GST.
func calculateDispatch(snap snapshot) Result {
	var totalValue float64
	items := make([]DisplayItem, 0, len(snap.in.Quantities))
	required := map[string]int{}

	for _, skuID := range sortedQuantityKeys(snap.in.Quantities) {
		qty := snap.in.Quantities[skuID]
		if qty <= 0 {
			continue
		}
		sku, ok := snap.skuByID[skuID]
		if !ok {
			continue
		}
		totalValue += float64(qty) * sku.Price
		items = append(items, DisplayItem{
			SKUID:     skuID,
			Name:      sku.Name,
			Quantity:  qty,
			UnitPrice: sku.Price,
		})
		required[skuID] = qty
	}

	sortByName(items)

	return Result{
		Items:          items,
		TotalValue:     totalValue,
		StockCheck:     checkStock(snap, required),
		AppliedSchemes: []AppliedScheme{},
	}
}

func emptyResult() Result {
	return Result{
		Items:          []DisplayItem{},
		StockCheck:     StockCheck{Issues: []string{}},
		AppliedSchemes: []AppliedScheme{},
	}
}

// sortedQuantityKeys fixes the iteration order over the requested-quantity
// map so identical inputs always produce identical output.
func sortedQuantityKeys(quantities map[string]int) []string {
	keys := make([]string, 0, len(quantities))
	for k := range quantities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortByName orders lines alphabetically by SKU name, id as tie-breaker.
// Paid and free groups are sorted separately and concatenated paid-first.
func sortByName(items []DisplayItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].SKUID < items[j].SKUID
	})
}
