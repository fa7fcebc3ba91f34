package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

var _ repository.WalletRepository = (*WalletRepo)(nil)

const walletTxColumns = `id, COALESCE(distributor_id, ''), COALESCE(store_id, ''), date, type, amount,
		balance_after, COALESCE(order_id, ''), COALESCE(transfer_id, ''), payment_method, remarks, initiated_by`

// WalletRepo implements WalletRepository over PostgreSQL (usable with pool or tx).
// It is append-only; balances live on the distributor and store rows.
type WalletRepo struct {
	q Querier
}

// NewWalletRepository builds the adapter. Pass pool or tx (Querier).
func NewWalletRepository(q Querier) *WalletRepo {
	return &WalletRepo{q: q}
}

// CreateTransaction appends a ledger entry.
func (r *WalletRepo) CreateTransaction(tx *entity.WalletTransaction) error {
	query := `
		INSERT INTO wallet_transactions (id, distributor_id, store_id, date, type, amount,
			balance_after, order_id, transfer_id, payment_method, remarks, initiated_by)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.DistributorID, tx.StoreID, tx.Date, tx.Type, tx.Amount,
		tx.BalanceAfter, tx.OrderID, tx.TransferID, tx.PaymentMethod, tx.Remarks, tx.InitiatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert wallet transaction: %w", err)
	}
	return nil
}

// ListByDistributor returns the ledger of one distributor, most recent first.
func (r *WalletRepo) ListByDistributor(distributorID string) ([]entity.WalletTransaction, error) {
	query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions WHERE distributor_id = $1 ORDER BY date DESC, id`
	return r.list(query, distributorID)
}

// ListByStore returns the ledger of one store wallet, most recent first.
func (r *WalletRepo) ListByStore(storeID string) ([]entity.WalletTransaction, error) {
	query := `SELECT ` + walletTxColumns + ` FROM wallet_transactions WHERE store_id = $1 ORDER BY date DESC, id`
	return r.list(query, storeID)
}

func (r *WalletRepo) list(query string, args ...any) ([]entity.WalletTransaction, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list wallet transactions: %w", err)
	}
	defer rows.Close()

	var txs []entity.WalletTransaction
	for rows.Next() {
		var tx entity.WalletTransaction
		if err := rows.Scan(
			&tx.ID, &tx.DistributorID, &tx.StoreID, &tx.Date, &tx.Type, &tx.Amount,
			&tx.BalanceAfter, &tx.OrderID, &tx.TransferID, &tx.PaymentMethod, &tx.Remarks, &tx.InitiatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan wallet transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
