package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDistributorRequest input to register a distributor.
type CreateDistributorRequest struct {
	Name              string          `json:"name" validate:"required"`
	Phone             string          `json:"phone"`
	State             string          `json:"state"`
	Area              string          `json:"area"`
	CreditLimit       decimal.Decimal `json:"creditLimit"`
	GSTIN             string          `json:"gstin"`
	BillingAddress    string          `json:"billingAddress"`
	HasSpecialSchemes bool            `json:"hasSpecialSchemes"`
	ASMName           string          `json:"asmName"`
	ExecutiveName     string          `json:"executiveName"`
	PriceTierID       string          `json:"priceTierId"`
	StoreID           string          `json:"storeId"`
}

// UpdateDistributorRequest partial update; PriceTierID/StoreID accept empty
// strings to clear the assignment.
type UpdateDistributorRequest struct {
	Name              *string          `json:"name"`
	Phone             *string          `json:"phone"`
	State             *string          `json:"state"`
	Area              *string          `json:"area"`
	CreditLimit       *decimal.Decimal `json:"creditLimit"`
	GSTIN             *string          `json:"gstin"`
	BillingAddress    *string          `json:"billingAddress"`
	HasSpecialSchemes *bool            `json:"hasSpecialSchemes"`
	ASMName           *string          `json:"asmName"`
	ExecutiveName     *string          `json:"executiveName"`
	PriceTierID       *string          `json:"priceTierId"`
	StoreID           *string          `json:"storeId"`
}

// DistributorResponse distributor output.
type DistributorResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Phone             string          `json:"phone"`
	State             string          `json:"state"`
	Area              string          `json:"area"`
	CreditLimit       decimal.Decimal `json:"creditLimit"`
	GSTIN             string          `json:"gstin"`
	BillingAddress    string          `json:"billingAddress"`
	HasSpecialSchemes bool            `json:"hasSpecialSchemes"`
	ASMName           string          `json:"asmName"`
	ExecutiveName     string          `json:"executiveName"`
	WalletBalance     decimal.Decimal `json:"walletBalance"`
	DateAdded         time.Time       `json:"dateAdded"`
	PriceTierID       string          `json:"priceTierId,omitempty"`
	StoreID           string          `json:"storeId,omitempty"`
}

// StoreResponse store output.
type StoreResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	AddressLine1  string          `json:"addressLine1"`
	AddressLine2  string          `json:"addressLine2"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	GSTIN         string          `json:"gstin"`
	WalletBalance decimal.Decimal `json:"walletBalance"`
}

// CreateStoreRequest input to create a store.
type CreateStoreRequest struct {
	Name         string `json:"name" validate:"required"`
	Location     string `json:"location"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	GSTIN        string `json:"gstin"`
}
