package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderPending   = "Pending"
	OrderDelivered = "Delivered"
)

// Order is a distributor purchase. TotalAmount is the rounded grand total
// (subtotal + GST) computed by the pricing engine at placement time.
type Order struct {
	ID             string
	DistributorID  string
	Date           time.Time
	TotalAmount    decimal.Decimal
	Status         string
	PlacedByExecID string
	DeliveredDate  *time.Time
}

// OrderItem is one order line. Free-goods lines carry UnitPrice zero and
// IsFreebie true.
type OrderItem struct {
	ID        string
	OrderID   string
	SKUID     string
	Quantity  int
	UnitPrice float64
	IsFreebie bool
}
