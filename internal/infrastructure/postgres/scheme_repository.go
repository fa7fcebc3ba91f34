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

var _ repository.SchemeRepository = (*SchemeRepo)(nil)

const schemeColumns = `id, description, buy_sku_id, buy_quantity, get_sku_id, get_quantity,
		start_date, end_date, is_global, COALESCE(distributor_id, ''), COALESCE(store_id, ''),
		COALESCE(stopped_by, ''), stopped_date`

// SchemeRepo implements SchemeRepository over PostgreSQL (usable with pool or tx).
type SchemeRepo struct {
	q Querier
}

// NewSchemeRepository builds the adapter. Pass pool or tx (Querier).
func NewSchemeRepository(q Querier) *SchemeRepo {
	return &SchemeRepo{q: q}
}

// Create persists a new scheme.
func (r *SchemeRepo) Create(s *entity.Scheme) error {
	query := `
		INSERT INTO schemes (id, description, buy_sku_id, buy_quantity, get_sku_id, get_quantity,
			start_date, end_date, is_global, distributor_id, store_id, stopped_by, stopped_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''), $13)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Description, s.BuySKUID, s.BuyQuantity, s.GetSKUID, s.GetQuantity,
		s.StartDate, s.EndDate, s.IsGlobal, s.DistributorID, s.StoreID, s.StoppedBy, s.StoppedDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert scheme: %w", err)
	}
	return nil
}

// GetByID returns a scheme by id, or nil when it does not exist.
func (r *SchemeRepo) GetByID(id string) (*entity.Scheme, error) {
	query := `SELECT ` + schemeColumns + ` FROM schemes WHERE id = $1`
	var s entity.Scheme
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Description, &s.BuySKUID, &s.BuyQuantity, &s.GetSKUID, &s.GetQuantity,
		&s.StartDate, &s.EndDate, &s.IsGlobal, &s.DistributorID, &s.StoreID,
		&s.StoppedBy, &s.StoppedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get scheme: %w", err)
	}
	return &s, nil
}

// List returns every scheme row. Eligibility filtering is the pricing
// engine's job, not the repository's.
func (r *SchemeRepo) List() ([]entity.Scheme, error) {
	query := `SELECT ` + schemeColumns + ` FROM schemes ORDER BY start_date, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list schemes: %w", err)
	}
	defer rows.Close()

	var schemes []entity.Scheme
	for rows.Next() {
		var s entity.Scheme
		if err := rows.Scan(
			&s.ID, &s.Description, &s.BuySKUID, &s.BuyQuantity, &s.GetSKUID, &s.GetQuantity,
			&s.StartDate, &s.EndDate, &s.IsGlobal, &s.DistributorID, &s.StoreID,
			&s.StoppedBy, &s.StoppedDate,
		); err != nil {
			return nil, fmt.Errorf("scan scheme: %w", err)
		}
		schemes = append(schemes, s)
	}
	return schemes, rows.Err()
}

// Update rewrites a scheme (including stop metadata).
func (r *SchemeRepo) Update(s *entity.Scheme) error {
	query := `
		UPDATE schemes SET description = $2, buy_sku_id = $3, buy_quantity = $4, get_sku_id = $5,
			get_quantity = $6, start_date = $7, end_date = $8, is_global = $9,
			distributor_id = NULLIF($10, ''), store_id = NULLIF($11, ''),
			stopped_by = NULLIF($12, ''), stopped_date = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Description, s.BuySKUID, s.BuyQuantity, s.GetSKUID, s.GetQuantity,
		s.StartDate, s.EndDate, s.IsGlobal, s.DistributorID, s.StoreID, s.StoppedBy, s.StoppedDate,
	)
	if err != nil {
		return fmt.Errorf("update scheme: %w", err)
	}
	return nil
}
