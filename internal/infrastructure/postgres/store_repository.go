package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/distributor-api/internal/domain"
	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

const storeColumns = `id, name, location, address_line1, address_line2, email, phone, gstin, wallet_balance`

// StoreRepo implements StoreRepository over PostgreSQL (usable with pool or tx).
type StoreRepo struct {
	q Querier
}

// NewStoreRepository builds the adapter. Pass pool or tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persists a new store.
func (r *StoreRepo) Create(s *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, location, address_line1, address_line2, email, phone, gstin, wallet_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Location, s.AddressLine1, s.AddressLine2, s.Email, s.Phone, s.GSTIN, s.WalletBalance,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID returns a store by id, or nil when it does not exist.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get store")
}

// GetForUpdate returns the store with its row locked (SELECT FOR UPDATE).
func (r *StoreRepo) GetForUpdate(id string) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get store for update")
}

// List returns all stores ordered by name.
func (r *StoreRepo) List() ([]entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores ORDER BY name, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var stores []entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Location, &s.AddressLine1, &s.AddressLine2, &s.Email, &s.Phone, &s.GSTIN, &s.WalletBalance,
		); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

// UpdateWalletBalance sets the store wallet balance. Call inside a tx after GetForUpdate.
func (r *StoreRepo) UpdateWalletBalance(id string, balance decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stores SET wallet_balance = $2 WHERE id = $1`,
		id, balance,
	)
	if err != nil {
		return fmt.Errorf("update store wallet balance: %w", err)
	}
	return nil
}

func (r *StoreRepo) scanOne(row pgx.Row, op string) (*entity.Store, error) {
	var s entity.Store
	err := row.Scan(
		&s.ID, &s.Name, &s.Location, &s.AddressLine1, &s.AddressLine2, &s.Email, &s.Phone, &s.GSTIN, &s.WalletBalance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
