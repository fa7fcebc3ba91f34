package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implements TransferRepository over PostgreSQL (usable with pool or tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository builds the adapter. Pass pool or tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persists a new transfer header.
func (r *TransferRepo) Create(t *entity.StockTransfer) error {
	query := `
		INSERT INTO stock_transfers (id, destination_store_id, date, status, initiated_by, delivered_date, total_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.DestinationStoreID, t.Date, t.Status, t.InitiatedBy, t.DeliveredDate, t.TotalValue,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// CreateItem persists one transfer line.
func (r *TransferRepo) CreateItem(item *entity.StockTransferItem) error {
	query := `
		INSERT INTO stock_transfer_items (id, transfer_id, sku_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TransferID, item.SKUID, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert transfer item: %w", err)
	}
	return nil
}

// GetByID returns a transfer by id, or nil when it does not exist.
func (r *TransferRepo) GetByID(id string) (*entity.StockTransfer, error) {
	query := `
		SELECT id, destination_store_id, date, status, initiated_by, delivered_date, total_value
		FROM stock_transfers WHERE id = $1`
	var t entity.StockTransfer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.DestinationStoreID, &t.Date, &t.Status, &t.InitiatedBy, &t.DeliveredDate, &t.TotalValue,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return &t, nil
}

// List returns all transfers, most recent first.
func (r *TransferRepo) List() ([]entity.StockTransfer, error) {
	query := `
		SELECT id, destination_store_id, date, status, initiated_by, delivered_date, total_value
		FROM stock_transfers ORDER BY date DESC, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var transfers []entity.StockTransfer
	for rows.Next() {
		var t entity.StockTransfer
		if err := rows.Scan(
			&t.ID, &t.DestinationStoreID, &t.Date, &t.Status, &t.InitiatedBy, &t.DeliveredDate, &t.TotalValue,
		); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}

// ListItems returns the lines of one transfer.
func (r *TransferRepo) ListItems(transferID string) ([]entity.StockTransferItem, error) {
	query := `
		SELECT id, transfer_id, sku_id, quantity, unit_price
		FROM stock_transfer_items WHERE transfer_id = $1 ORDER BY sku_id`
	rows, err := r.q.Query(context.Background(), query, transferID)
	if err != nil {
		return nil, fmt.Errorf("list transfer items: %w", err)
	}
	defer rows.Close()

	var items []entity.StockTransferItem
	for rows.Next() {
		var item entity.StockTransferItem
		if err := rows.Scan(&item.ID, &item.TransferID, &item.SKUID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan transfer item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update rewrites the status fields of a transfer.
func (r *TransferRepo) Update(t *entity.StockTransfer) error {
	query := `
		UPDATE stock_transfers SET status = $2, delivered_date = $3, total_value = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.Status, t.DeliveredDate, t.TotalValue)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	return nil
}
