package entity

import "github.com/shopspring/decimal"

// Store is a regional depot that serves a set of distributors and carries its
// own stock location and wallet.
type Store struct {
	ID            string
	Name          string
	Location      string
	AddressLine1  string
	AddressLine2  string
	Email         string
	Phone         string
	GSTIN         string
	WalletBalance decimal.Decimal
}
