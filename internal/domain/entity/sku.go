package entity

import "time"

// SKU is a sellable product. Price is the tax-inclusive catalog unit price;
// PriceNetCarton is the pre-computed tax-exclusive carton price used for
// subtotal accumulation when no tier override applies. Immutable during a
// price calculation.
type SKU struct {
	ID             string
	Name           string
	Price          float64
	PriceNetCarton float64
	HSNCode        string
	GSTPercentage  float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
