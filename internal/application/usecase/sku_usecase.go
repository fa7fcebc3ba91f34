package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/distributor-api/internal/application/dto"
	"github.com/jhoicas/distributor-api/internal/domain"
	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

// SKUUseCase CRUD use cases for the product catalog.
type SKUUseCase struct {
	repo repository.SKURepository
}

// NewSKUUseCase builds the use case.
func NewSKUUseCase(repo repository.SKURepository) *SKUUseCase {
	return &SKUUseCase{repo: repo}
}

// Create creates a catalog product.
func (uc *SKUUseCase) Create(in dto.CreateSKURequest) (*dto.SKUResponse, error) {
	if in.Name == "" || in.Price <= 0 || in.PriceNetCarton <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.GSTPercentage < 0 || in.GSTPercentage > 100 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sku := &entity.SKU{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Price:          in.Price,
		PriceNetCarton: in.PriceNetCarton,
		HSNCode:        in.HSNCode,
		GSTPercentage:  in.GSTPercentage,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(sku); err != nil {
		return nil, err
	}
	return toSKUResponse(sku), nil
}

// GetByID returns a product or nil.
func (uc *SKUUseCase) GetByID(id string) (*dto.SKUResponse, error) {
	sku, err := uc.repo.GetByID(id)
	if err != nil || sku == nil {
		return nil, err
	}
	return toSKUResponse(sku), nil
}

// List returns the whole catalog.
func (uc *SKUUseCase) List() ([]dto.SKUResponse, error) {
	skus, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SKUResponse, 0, len(skus))
	for i := range skus {
		out = append(out, *toSKUResponse(&skus[i]))
	}
	return out, nil
}

// Update applies a partial update.
func (uc *SKUUseCase) Update(id string, in dto.UpdateSKURequest) (*dto.SKUResponse, error) {
	sku, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, nil
	}
	if in.Name != nil {
		sku.Name = *in.Name
	}
	if in.Price != nil {
		sku.Price = *in.Price
	}
	if in.PriceNetCarton != nil {
		sku.PriceNetCarton = *in.PriceNetCarton
	}
	if in.HSNCode != nil {
		sku.HSNCode = *in.HSNCode
	}
	if in.GSTPercentage != nil {
		sku.GSTPercentage = *in.GSTPercentage
	}
	sku.UpdatedAt = time.Now()
	if err := uc.repo.Update(sku); err != nil {
		return nil, err
	}
	return toSKUResponse(sku), nil
}

func toSKUResponse(s *entity.SKU) *dto.SKUResponse {
	return &dto.SKUResponse{
		ID:             s.ID,
		Name:           s.Name,
		Price:          s.Price,
		PriceNetCarton: s.PriceNetCarton,
		HSNCode:        s.HSNCode,
		GSTPercentage:  s.GSTPercentage,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
