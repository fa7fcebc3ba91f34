package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/distributor-api/internal/domain/entity"
)

// DistributorRepository persistence port for distributor accounts.
type DistributorRepository interface {
	Create(d *entity.Distributor) error
	GetByID(id string) (*entity.Distributor, error)
	List() ([]entity.Distributor, error)
	ListByStore(storeID string) ([]entity.Distributor, error)
	Update(d *entity.Distributor) error
	// GetForUpdate row-locks the distributor for wallet arithmetic within a tx.
	GetForUpdate(id string) (*entity.Distributor, error)
	UpdateWalletBalance(id string, balance decimal.Decimal) error
}
