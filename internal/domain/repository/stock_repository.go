package repository

import "github.com/jhoicas/distributor-api/internal/domain/entity"

// StockRepository persistence port for per-location stock rows.
type StockRepository interface {
	Get(skuID, locationID string) (*entity.StockItem, error)
	// GetForUpdate row-locks the stock row (SELECT FOR UPDATE) within a tx.
	GetForUpdate(skuID, locationID string) (*entity.StockItem, error)
	ListByLocation(locationID string) ([]entity.StockItem, error)
	Upsert(item *entity.StockItem) error
}

// TransferRepository persistence port for plant -> store stock transfers.
type TransferRepository interface {
	Create(t *entity.StockTransfer) error
	CreateItem(item *entity.StockTransferItem) error
	GetByID(id string) (*entity.StockTransfer, error)
	List() ([]entity.StockTransfer, error)
	ListItems(transferID string) ([]entity.StockTransferItem, error)
	Update(t *entity.StockTransfer) error
}
