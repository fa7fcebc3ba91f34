package dto

import "time"

// CreateSchemeRequest input to create a promotional scheme. Exactly one of
// IsGlobal, DistributorID, StoreID must identify the scope.
type CreateSchemeRequest struct {
	Description   string    `json:"description"`
	BuySKUID      string    `json:"buySkuId" validate:"required"`
	BuyQuantity   int       `json:"buyQuantity" validate:"required,gt=0"`
	GetSKUID      string    `json:"getSkuId" validate:"required"`
	GetQuantity   int       `json:"getQuantity" validate:"required,gt=0"`
	StartDate     time.Time `json:"startDate" validate:"required"`
	EndDate       time.Time `json:"endDate" validate:"required"`
	IsGlobal      bool      `json:"isGlobal"`
	DistributorID string    `json:"distributorId"`
	StoreID       string    `json:"storeId"`
}

// SchemeResponse scheme output.
type SchemeResponse struct {
	ID            string     `json:"id"`
	Description   string     `json:"description"`
	BuySKUID      string     `json:"buySkuId"`
	BuyQuantity   int        `json:"buyQuantity"`
	GetSKUID      string     `json:"getSkuId"`
	GetQuantity   int        `json:"getQuantity"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       time.Time  `json:"endDate"`
	IsGlobal      bool       `json:"isGlobal"`
	DistributorID string     `json:"distributorId,omitempty"`
	StoreID       string     `json:"storeId,omitempty"`
	StoppedBy     string     `json:"stoppedBy,omitempty"`
	StoppedDate   *time.Time `json:"stoppedDate,omitempty"`
}
