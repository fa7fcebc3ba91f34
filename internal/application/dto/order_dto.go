package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/distributor-api/internal/domain/pricing"
)

// QuoteItemRequest one requested line.
type QuoteItemRequest struct {
	SKUID    string `json:"skuId" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// QuoteRequest input to preview an order calculation. Read-only.
type QuoteRequest struct {
	DistributorID string             `json:"distributorId" validate:"required"`
	Items         []QuoteItemRequest `json:"items" validate:"required,min=1"`
}

// QuoteResponse the full engine result for display: paid then free lines,
// rounded totals, stock diagnostic and applied-scheme audit list.
type QuoteResponse struct {
	DisplayItems   []pricing.DisplayItem   `json:"displayItems"`
	Subtotal       float64                 `json:"subtotal"`
	GSTAmount      float64                 `json:"gstAmount"`
	GrandTotal     float64                 `json:"grandTotal"`
	StockCheck     pricing.StockCheck      `json:"stockCheck"`
	AppliedSchemes []pricing.AppliedScheme `json:"appliedSchemes"`
}

// PlaceOrderRequest input to place an order. The server recomputes the quote;
// client-side totals are never trusted.
type PlaceOrderRequest struct {
	DistributorID string             `json:"distributorId" validate:"required"`
	Items         []QuoteItemRequest `json:"items" validate:"required,min=1"`
	Username      string             `json:"username" validate:"required"`
}

// OrderResponse order header output.
type OrderResponse struct {
	ID             string          `json:"id"`
	DistributorID  string          `json:"distributorId"`
	Date           time.Time       `json:"date"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Status         string          `json:"status"`
	PlacedByExecID string          `json:"placedByExecId"`
	DeliveredDate  *time.Time      `json:"deliveredDate,omitempty"`
}

// OrderItemResponse one persisted order line.
type OrderItemResponse struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"orderId"`
	SKUID     string  `json:"skuId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	IsFreebie bool    `json:"isFreebie"`
}

// TransferItemRequest one line of a dispatch transfer.
type TransferItemRequest struct {
	SKUID    string `json:"skuId" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// CreateTransferRequest input to dispatch stock plant -> store.
type CreateTransferRequest struct {
	StoreID  string                `json:"storeId" validate:"required"`
	Items    []TransferItemRequest `json:"items" validate:"required,min=1"`
	Username string                `json:"username" validate:"required"`
}

// TransferResponse transfer header output.
type TransferResponse struct {
	ID                 string     `json:"id"`
	DestinationStoreID string     `json:"destinationStoreId"`
	Date               time.Time  `json:"date"`
	Status             string     `json:"status"`
	InitiatedBy        string     `json:"initiatedBy"`
	DeliveredDate      *time.Time `json:"deliveredDate,omitempty"`
	TotalValue         float64    `json:"totalValue"`
}

// TransferQuoteResponse dispatch-mode preview: catalog-valued lines plus the
// stock diagnostic at the plant.
type TransferQuoteResponse struct {
	DisplayItems []pricing.DisplayItem `json:"displayItems"`
	TotalValue   float64               `json:"totalValue"`
	StockCheck   pricing.StockCheck    `json:"stockCheck"`
}
