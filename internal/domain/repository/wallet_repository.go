package repository

import "github.com/jhoicas/distributor-api/internal/domain/entity"

// WalletRepository persistence port for the wallet transaction ledger.
// Balance columns live on distributors/stores; this repo records entries.
type WalletRepository interface {
	CreateTransaction(tx *entity.WalletTransaction) error
	ListByDistributor(distributorID string) ([]entity.WalletTransaction, error)
	ListByStore(storeID string) ([]entity.WalletTransaction, error)
}
