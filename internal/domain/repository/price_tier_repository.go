package repository

import "github.com/jhoicas/distributor-api/internal/domain/entity"

// PriceTierRepository persistence port for price tiers and their per-SKU
// override rows.
type PriceTierRepository interface {
	CreateTier(t *entity.PriceTier) error
	GetTier(id string) (*entity.PriceTier, error)
	ListTiers() ([]entity.PriceTier, error)
	UpsertItem(item *entity.PriceTierItem) error
	DeleteItem(tierID, skuID string) error
	ListItems() ([]entity.PriceTierItem, error)
	ListItemsByTier(tierID string) ([]entity.PriceTierItem, error)
}
