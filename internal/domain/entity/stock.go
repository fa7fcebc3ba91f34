package entity

import "time"

// LocationPlant is the stock location id of the manufacturing plant. Stores
// use their store id as location id, distributors their distributor id.
const LocationPlant = "plant"

// StockItem is the stock of one SKU at one location. Available stock for
// order/transfer purposes is Quantity - Reserved.
type StockItem struct {
	SKUID      string
	LocationID string
	Quantity   int
	Reserved   int
	UpdatedAt  time.Time
}

// Available returns on-hand minus reserved quantity.
func (s StockItem) Available() int {
	return s.Quantity - s.Reserved
}

// Stock movement types recorded against a location.
const (
	MovementProduction  = "PRODUCTION"
	MovementTransferOut = "TRANSFER_OUT"
	MovementTransferIn  = "TRANSFER_IN"
	MovementSale        = "SALE"
	MovementReserved    = "RESERVED"
	MovementUnreserved  = "UNRESERVED"
)

// StockTransfer is a plant -> store shipment priced at catalog value.
type StockTransfer struct {
	ID                 string
	DestinationStoreID string
	Date               time.Time
	Status             string // TransferPending | TransferDelivered
	InitiatedBy        string
	DeliveredDate      *time.Time
	TotalValue         float64
}

// Stock transfer statuses.
const (
	TransferPending   = "Pending"
	TransferDelivered = "Delivered"
)

// StockTransferItem is one line of a transfer.
type StockTransferItem struct {
	ID         string
	TransferID string
	SKUID      string
	Quantity   int
	UnitPrice  float64
}
