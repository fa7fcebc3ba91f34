package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/distributor-api/internal/domain/entity"
)

// StoreRepository persistence port for stores.
type StoreRepository interface {
	Create(s *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	List() ([]entity.Store, error)
	GetForUpdate(id string) (*entity.Store, error)
	UpdateWalletBalance(id string, balance decimal.Decimal) error
}

// UserRepository persistence port for operator accounts.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
}
