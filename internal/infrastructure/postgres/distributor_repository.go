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

var _ repository.DistributorRepository = (*DistributorRepo)(nil)

const distributorColumns = `id, name, phone, state, area, credit_limit, gstin, billing_address,
		has_special_schemes, asm_name, executive_name, wallet_balance, date_added,
		COALESCE(price_tier_id, ''), COALESCE(store_id, '')`

// DistributorRepo implements DistributorRepository over PostgreSQL (usable with pool or tx).
type DistributorRepo struct {
	q Querier
}

// NewDistributorRepository builds the adapter. Pass pool or tx (Querier).
func NewDistributorRepository(q Querier) *DistributorRepo {
	return &DistributorRepo{q: q}
}

// Create persists a new distributor account.
func (r *DistributorRepo) Create(d *entity.Distributor) error {
	query := `
		INSERT INTO distributors (id, name, phone, state, area, credit_limit, gstin, billing_address,
			has_special_schemes, asm_name, executive_name, wallet_balance, date_added, price_tier_id, store_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NULLIF($14, ''), NULLIF($15, ''))`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Name, d.Phone, d.State, d.Area, d.CreditLimit, d.GSTIN, d.BillingAddress,
		d.HasSpecialSchemes, d.ASMName, d.ExecutiveName, d.WalletBalance, d.DateAdded,
		d.PriceTierID, d.StoreID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert distributor: %w", err)
	}
	return nil
}

// GetByID returns a distributor by id, or nil when it does not exist.
func (r *DistributorRepo) GetByID(id string) (*entity.Distributor, error) {
	query := `SELECT ` + distributorColumns + ` FROM distributors WHERE id = $1`
	d, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get distributor: %w", err)
	}
	return d, nil
}

// GetForUpdate returns the distributor with its row locked (SELECT FOR UPDATE).
func (r *DistributorRepo) GetForUpdate(id string) (*entity.Distributor, error) {
	query := `SELECT ` + distributorColumns + ` FROM distributors WHERE id = $1 FOR UPDATE`
	d, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get distributor for update: %w", err)
	}
	return d, nil
}

// List returns all distributors ordered by name.
func (r *DistributorRepo) List() ([]entity.Distributor, error) {
	query := `SELECT ` + distributorColumns + ` FROM distributors ORDER BY name, id`
	return r.list(query)
}

// ListByStore returns the distributors assigned to a store.
func (r *DistributorRepo) ListByStore(storeID string) ([]entity.Distributor, error) {
	query := `SELECT ` + distributorColumns + ` FROM distributors WHERE store_id = $1 ORDER BY name, id`
	return r.list(query, storeID)
}

// Update rewrites the mutable fields of a distributor. Wallet balance is
// handled by UpdateWalletBalance only.
func (r *DistributorRepo) Update(d *entity.Distributor) error {
	query := `
		UPDATE distributors SET name = $2, phone = $3, state = $4, area = $5, credit_limit = $6,
			gstin = $7, billing_address = $8, has_special_schemes = $9, asm_name = $10,
			executive_name = $11, price_tier_id = NULLIF($12, ''), store_id = NULLIF($13, '')
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Name, d.Phone, d.State, d.Area, d.CreditLimit, d.GSTIN, d.BillingAddress,
		d.HasSpecialSchemes, d.ASMName, d.ExecutiveName, d.PriceTierID, d.StoreID,
	)
	if err != nil {
		return fmt.Errorf("update distributor: %w", err)
	}
	return nil
}

// UpdateWalletBalance sets the wallet balance. Call inside a tx after GetForUpdate.
func (r *DistributorRepo) UpdateWalletBalance(id string, balance decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE distributors SET wallet_balance = $2 WHERE id = $1`,
		id, balance,
	)
	if err != nil {
		return fmt.Errorf("update distributor wallet balance: %w", err)
	}
	return nil
}

func (r *DistributorRepo) scanOne(row pgx.Row) (*entity.Distributor, error) {
	var d entity.Distributor
	err := row.Scan(
		&d.ID, &d.Name, &d.Phone, &d.State, &d.Area, &d.CreditLimit, &d.GSTIN, &d.BillingAddress,
		&d.HasSpecialSchemes, &d.ASMName, &d.ExecutiveName, &d.WalletBalance, &d.DateAdded,
		&d.PriceTierID, &d.StoreID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DistributorRepo) list(query string, args ...any) ([]entity.Distributor, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list distributors: %w", err)
	}
	defer rows.Close()

	var distributors []entity.Distributor
	for rows.Next() {
		var d entity.Distributor
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Phone, &d.State, &d.Area, &d.CreditLimit, &d.GSTIN, &d.BillingAddress,
			&d.HasSpecialSchemes, &d.ASMName, &d.ExecutiveName, &d.WalletBalance, &d.DateAdded,
			&d.PriceTierID, &d.StoreID,
		); err != nil {
			return nil, fmt.Errorf("scan distributor: %w", err)
		}
		distributors = append(distributors, d)
	}
	return distributors, rows.Err()
}
