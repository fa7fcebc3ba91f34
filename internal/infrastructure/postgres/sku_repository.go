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

var _ repository.SKURepository = (*SKURepo)(nil)

// SKURepo implements SKURepository over PostgreSQL (usable with pool or tx).
type SKURepo struct {
	q Querier
}

// NewSKURepository builds the catalog persistence adapter. Pass pool or tx (Querier).
func NewSKURepository(q Querier) *SKURepo {
	return &SKURepo{q: q}
}

// Create persists a new SKU.
func (r *SKURepo) Create(sku *entity.SKU) error {
	query := `
		INSERT INTO skus (id, name, price, price_net_carton, hsn_code, gst_percentage, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sku.ID, sku.Name, sku.Price, sku.PriceNetCarton, sku.HSNCode, sku.GSTPercentage,
		sku.CreatedAt, sku.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// GetByID returns a SKU by id, or nil when it does not exist.
func (r *SKURepo) GetByID(id string) (*entity.SKU, error) {
	query := `
		SELECT id, name, price, price_net_carton, hsn_code, gst_percentage, created_at, updated_at
		FROM skus WHERE id = $1`
	var s entity.SKU
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Price, &s.PriceNetCarton, &s.HSNCode, &s.GSTPercentage,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return &s, nil
}

// List returns the whole catalog ordered by name.
func (r *SKURepo) List() ([]entity.SKU, error) {
	query := `
		SELECT id, name, price, price_net_carton, hsn_code, gst_percentage, created_at, updated_at
		FROM skus ORDER BY name, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()

	var skus []entity.SKU
	for rows.Next() {
		var s entity.SKU
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Price, &s.PriceNetCarton, &s.HSNCode, &s.GSTPercentage,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		skus = append(skus, s)
	}
	return skus, rows.Err()
}

// Update rewrites the mutable fields of a SKU.
func (r *SKURepo) Update(sku *entity.SKU) error {
	query := `
		UPDATE skus SET name = $2, price = $3, price_net_carton = $4, hsn_code = $5, gst_percentage = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sku.ID, sku.Name, sku.Price, sku.PriceNetCarton, sku.HSNCode, sku.GSTPercentage, sku.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sku: %w", err)
	}
	return nil
}
