package usecase

import (
	"github.com/google/uuid"

	"github.com/jhoicas/distributor-api/internal/application/dto"
	"github.com/jhoicas/distributor-api/internal/domain"
	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

// PriceTierUseCase use cases for tiers and their per-SKU override rows.
type PriceTierUseCase struct {
	repo    repository.PriceTierRepository
	skuRepo repository.SKURepository
}

// NewPriceTierUseCase builds the use case.
func NewPriceTierUseCase(repo repository.PriceTierRepository, skuRepo repository.SKURepository) *PriceTierUseCase {
	return &PriceTierUseCase{repo: repo, skuRepo: skuRepo}
}

// CreateTier creates an empty tier.
func (uc *PriceTierUseCase) CreateTier(in dto.CreatePriceTierRequest) (*dto.PriceTierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.PriceTier{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.repo.CreateTier(t); err != nil {
		return nil, err
	}
	return &dto.PriceTierResponse{ID: t.ID, Name: t.Name, Description: t.Description}, nil
}

// ListTiers returns all tiers without their rows.
func (uc *PriceTierUseCase) ListTiers() ([]dto.PriceTierResponse, error) {
	tiers, err := uc.repo.ListTiers()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PriceTierResponse, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, dto.PriceTierResponse{ID: t.ID, Name: t.Name, Description: t.Description})
	}
	return out, nil
}

// GetTier returns a tier with its override rows, or nil.
func (uc *PriceTierUseCase) GetTier(id string) (*dto.PriceTierResponse, error) {
	t, err := uc.repo.GetTier(id)
	if err != nil || t == nil {
		return nil, err
	}
	items, err := uc.repo.ListItemsByTier(id)
	if err != nil {
		return nil, err
	}
	resp := &dto.PriceTierResponse{ID: t.ID, Name: t.Name, Description: t.Description}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.PriceTierItemResponse{SKUID: item.SKUID, Price: item.Price})
	}
	return resp, nil
}

// UpsertItem sets or replaces the override price of one SKU in a tier.
func (uc *PriceTierUseCase) UpsertItem(tierID string, in dto.PriceTierItemRequest) error {
	if in.Price <= 0 {
		return domain.ErrInvalidInput
	}
	t, err := uc.repo.GetTier(tierID)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	sku, err := uc.skuRepo.GetByID(in.SKUID)
	if err != nil {
		return err
	}
	if sku == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpsertItem(&entity.PriceTierItem{TierID: tierID, SKUID: in.SKUID, Price: in.Price})
}

// RemoveItem deletes one override row; the SKU falls back to catalog price.
func (uc *PriceTierUseCase) RemoveItem(tierID, skuID string) error {
	return uc.repo.DeleteItem(tierID, skuID)
}
