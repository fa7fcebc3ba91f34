package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet transaction types.
const (
	TxRecharge        = "RECHARGE"
	TxOrderPayment    = "ORDER_PAYMENT"
	TxOrderRefund     = "ORDER_REFUND"
	TxTransferPayment = "TRANSFER_PAYMENT"
)

// WalletTransaction is one ledger entry against a distributor or store
// wallet. Amount is negative for debits; BalanceAfter is the wallet balance
// once the entry was applied.
type WalletTransaction struct {
	ID            string
	DistributorID string // set for distributor wallets
	StoreID       string // set for store wallets
	Date          time.Time
	Type          string
	Amount        decimal.Decimal
	BalanceAfter  decimal.Decimal
	OrderID       string
	TransferID    string
	PaymentMethod string
	Remarks       string
	InitiatedBy   string
}
