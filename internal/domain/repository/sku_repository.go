package repository

import "github.com/jhoicas/distributor-api/internal/domain/entity"

// SKURepository persistence port for the product catalog.
type SKURepository interface {
	Create(sku *entity.SKU) error
	GetByID(id string) (*entity.SKU, error)
	List() ([]entity.SKU, error)
	Update(sku *entity.SKU) error
}
