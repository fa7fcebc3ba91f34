package entity

// PriceTier is a named table of per-SKU price overrides assignable to
// distributors.
type PriceTier struct {
	ID          string
	Name        string
	Description string
}

// PriceTierItem maps (tier, SKU) to a tax-inclusive override unit price.
// Absence of a row means the catalog price applies for that SKU.
type PriceTierItem struct {
	TierID string
	SKUID  string
	Price  float64
}
