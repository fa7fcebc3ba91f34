package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RechargeRequest credits a distributor or store wallet (exactly one id set).
type RechargeRequest struct {
	DistributorID string          `json:"distributorId"`
	StoreID       string          `json:"storeId"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod string          `json:"paymentMethod"`
	Remarks       string          `json:"remarks"`
	Username      string          `json:"username" validate:"required"`
}

// WalletTransactionResponse one ledger entry.
type WalletTransactionResponse struct {
	ID            string          `json:"id"`
	DistributorID string          `json:"distributorId,omitempty"`
	StoreID       string          `json:"storeId,omitempty"`
	Date          time.Time       `json:"date"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	OrderID       string          `json:"orderId,omitempty"`
	TransferID    string          `json:"transferId,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Remarks       string          `json:"remarks,omitempty"`
	InitiatedBy   string          `json:"initiatedBy"`
}

// ProductionItemRequest one produced line at the plant.
type ProductionItemRequest struct {
	SKUID    string `json:"skuId" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// ProductionRequest records produced stock at the plant.
type ProductionRequest struct {
	Items    []ProductionItemRequest `json:"items" validate:"required,min=1"`
	Username string                  `json:"username" validate:"required"`
}

// StockItemResponse one stock row at a location.
type StockItemResponse struct {
	SKUID      string `json:"skuId"`
	LocationID string `json:"locationId"`
	Quantity   int    `json:"quantity"`
	Reserved   int    `json:"reserved"`
	Available  int    `json:"available"`
}
