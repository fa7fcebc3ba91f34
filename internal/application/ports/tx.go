package ports

import (
	"context"

	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

// TxRepos bundles repositories bound to one database transaction.
type TxRepos struct {
	Orders       repository.OrderRepository
	Stock        repository.StockRepository
	Distributors repository.DistributorRepository
	Stores       repository.StoreRepository
	Wallet       repository.WalletRepository
	Transfers    repository.TransferRepository
}

// TxRunner executes fn inside a database transaction, passing repositories
// bound to that transaction. Commit on nil, rollback on error. Guarantees
// atomicity for order placement, transfers and wallet arithmetic.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
