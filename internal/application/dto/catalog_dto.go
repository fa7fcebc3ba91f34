package dto

import "time"

// CreateSKURequest input to create a catalog product. PriceNetCarton is the
// pre-computed tax-exclusive carton price used in subtotal arithmetic.
type CreateSKURequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=200"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	PriceNetCarton float64 `json:"priceNetCarton" validate:"required,gt=0"`
	HSNCode        string  `json:"hsnCode"`
	GSTPercentage  float64 `json:"gstPercentage" validate:"gte=0,lte=100"`
}

// UpdateSKURequest partial update of a product.
type UpdateSKURequest struct {
	Name           *string  `json:"name"`
	Price          *float64 `json:"price"`
	PriceNetCarton *float64 `json:"priceNetCarton"`
	HSNCode        *string  `json:"hsnCode"`
	GSTPercentage  *float64 `json:"gstPercentage"`
}

// SKUResponse catalog product output.
type SKUResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Price          float64   `json:"price"`
	PriceNetCarton float64   `json:"priceNetCarton"`
	HSNCode        string    `json:"hsnCode"`
	GSTPercentage  float64   `json:"gstPercentage"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CreatePriceTierRequest input to create a tier.
type CreatePriceTierRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// PriceTierItemRequest one tier override row to upsert.
type PriceTierItemRequest struct {
	SKUID string  `json:"skuId" validate:"required"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

// PriceTierResponse tier with its override rows.
type PriceTierResponse struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Items       []PriceTierItemResponse `json:"items,omitempty"`
}

// PriceTierItemResponse one override row.
type PriceTierItemResponse struct {
	SKUID string  `json:"skuId"`
	Price float64 `json:"price"`
}
