package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implements StockRepository over PostgreSQL (usable with pool or tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository builds the stock adapter. Pass pool or tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get returns the stock row for a SKU at a location. A missing row reads as
// zero quantity, never as an error.
func (r *StockRepo) Get(skuID, locationID string) (*entity.StockItem, error) {
	query := `
		SELECT sku_id, location_id, quantity, reserved, updated_at
		FROM stock WHERE sku_id = $1 AND location_id = $2`
	var s entity.StockItem
	err := r.q.QueryRow(context.Background(), query, skuID, locationID).Scan(
		&s.SKUID, &s.LocationID, &s.Quantity, &s.Reserved, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockItem{SKUID: skuID, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate returns the stock row with a row lock (SELECT FOR UPDATE).
// A missing row reads as zero quantity with no lock; callers inside a tx
// follow up with Upsert.
func (r *StockRepo) GetForUpdate(skuID, locationID string) (*entity.StockItem, error) {
	query := `
		SELECT sku_id, location_id, quantity, reserved, updated_at
		FROM stock WHERE sku_id = $1 AND location_id = $2
		FOR UPDATE`
	var s entity.StockItem
	err := r.q.QueryRow(context.Background(), query, skuID, locationID).Scan(
		&s.SKUID, &s.LocationID, &s.Quantity, &s.Reserved, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockItem{SKUID: skuID, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// ListByLocation returns all stock rows at one location.
func (r *StockRepo) ListByLocation(locationID string) ([]entity.StockItem, error) {
	query := `
		SELECT sku_id, location_id, quantity, reserved, updated_at
		FROM stock WHERE location_id = $1 ORDER BY sku_id`
	rows, err := r.q.Query(context.Background(), query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var items []entity.StockItem
	for rows.Next() {
		var s entity.StockItem
		if err := rows.Scan(&s.SKUID, &s.LocationID, &s.Quantity, &s.Reserved, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// Upsert inserts or rewrites the quantity and reservation of one stock row.
func (r *StockRepo) Upsert(item *entity.StockItem) error {
	query := `
		INSERT INTO stock (sku_id, location_id, quantity, reserved, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (sku_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, reserved = EXCLUDED.reserved, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, item.SKUID, item.LocationID, item.Quantity, item.Reserved)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}
