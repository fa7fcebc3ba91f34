package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/distributor-api/internal/domain"
	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

var _ repository.PriceTierRepository = (*PriceTierRepo)(nil)

// PriceTierRepo implements PriceTierRepository over PostgreSQL (usable with pool or tx).
type PriceTierRepo struct {
	q Querier
}

// NewPriceTierRepository builds the adapter. Pass pool or tx (Querier).
func NewPriceTierRepository(q Querier) *PriceTierRepo {
	return &PriceTierRepo{q: q}
}

// CreateTier persists a new price tier.
func (r *PriceTierRepo) CreateTier(t *entity.PriceTier) error {
	query := `INSERT INTO price_tiers (id, name, description) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.Name, t.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert price tier: %w", err)
	}
	return nil
}

// GetTier returns a price tier by id, or nil when it does not exist.
func (r *PriceTierRepo) GetTier(id string) (*entity.PriceTier, error) {
	query := `SELECT id, name, description FROM price_tiers WHERE id = $1`
	var t entity.PriceTier
	err := r.q.QueryRow(context.Background(), query, id).Scan(&t.ID, &t.Name, &t.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price tier: %w", err)
	}
	return &t, nil
}

// ListTiers returns all price tiers ordered by name.
func (r *PriceTierRepo) ListTiers() ([]entity.PriceTier, error) {
	query := `SELECT id, name, description FROM price_tiers ORDER BY name, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list price tiers: %w", err)
	}
	defer rows.Close()

	var tiers []entity.PriceTier
	for rows.Next() {
		var t entity.PriceTier
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("scan price tier: %w", err)
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

// UpsertItem inserts or replaces the override price for (tier, SKU).
func (r *PriceTierRepo) UpsertItem(item *entity.PriceTierItem) error {
	query := `
		INSERT INTO price_tier_items (tier_id, sku_id, price)
		VALUES ($1, $2, $3)
		ON CONFLICT (tier_id, sku_id) DO UPDATE SET price = EXCLUDED.price`
	_, err := r.q.Exec(context.Background(), query, item.TierID, item.SKUID, item.Price)
	if err != nil {
		return fmt.Errorf("upsert price tier item: %w", err)
	}
	return nil
}

// DeleteItem removes the override for (tier, SKU); the catalog price applies again.
func (r *PriceTierRepo) DeleteItem(tierID, skuID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM price_tier_items WHERE tier_id = $1 AND sku_id = $2`,
		tierID, skuID,
	)
	if err != nil {
		return fmt.Errorf("delete price tier item: %w", err)
	}
	return nil
}

// ListItems returns all override rows across tiers.
func (r *PriceTierRepo) ListItems() ([]entity.PriceTierItem, error) {
	query := `SELECT tier_id, sku_id, price FROM price_tier_items ORDER BY tier_id, sku_id`
	return r.listItems(query)
}

// ListItemsByTier returns the override rows of one tier.
func (r *PriceTierRepo) ListItemsByTier(tierID string) ([]entity.PriceTierItem, error) {
	query := `SELECT tier_id, sku_id, price FROM price_tier_items WHERE tier_id = $1 ORDER BY sku_id`
	return r.listItems(query, tierID)
}

func (r *PriceTierRepo) listItems(query string, args ...any) ([]entity.PriceTierItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list price tier items: %w", err)
	}
	defer rows.Close()

	var items []entity.PriceTierItem
	for rows.Next() {
		var item entity.PriceTierItem
		if err := rows.Scan(&item.TierID, &item.SKUID, &item.Price); err != nil {
			return nil, fmt.Errorf("scan price tier item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
