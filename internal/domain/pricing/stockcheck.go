package pricing

import "fmt"

// checkStock compares the total required quantity per SKU (paid plus free)
// against available stock (on-hand minus reserved) at the source location.
// Shortfalls become issue strings; computation is never blocked on them.
func checkStock(snap snapshot, required map[string]int) StockCheck {
	issues := []string{}
	for _, skuID := range sortedQuantityKeys(required) {
		req := required[skuID]
		if req <= 0 {
			continue
		}
		level := snap.in.Stock[skuID]
		available := level.Quantity - level.Reserved
		if req > available {
			name := skuID
			if sku, ok := snap.skuByID[skuID]; ok {
				name = sku.Name
			}
			issues = append(issues, fmt.Sprintf("%s: required %d, available %d", name, req, available))
		}
	}
	return StockCheck{HasIssues: len(issues) > 0, Issues: issues}
}
