package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/distributor-api/internal/application/dto"
	"github.com/jhoicas/distributor-api/internal/domain"
	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

// SchemeUseCase use cases for promotional schemes: create, list, stop.
// Stopping is irreversible; stopped schemes stay on record for audit.
type SchemeUseCase struct {
	repo    repository.SchemeRepository
	skuRepo repository.SKURepository
}

// NewSchemeUseCase builds the use case.
func NewSchemeUseCase(repo repository.SchemeRepository, skuRepo repository.SKURepository) *SchemeUseCase {
	return &SchemeUseCase{repo: repo, skuRepo: skuRepo}
}

// Create validates scope exclusivity and SKU references, then persists.
func (uc *SchemeUseCase) Create(in dto.CreateSchemeRequest) (*dto.SchemeResponse, error) {
	if in.BuyQuantity <= 0 || in.GetQuantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	// Exactly one scope: global, store or distributor.
	scopes := 0
	if in.IsGlobal {
		scopes++
	}
	if in.DistributorID != "" {
		scopes++
	}
	if in.StoreID != "" {
		scopes++
	}
	if scopes != 1 {
		return nil, domain.ErrInvalidInput
	}
	for _, skuID := range []string{in.BuySKUID, in.GetSKUID} {
		sku, err := uc.skuRepo.GetByID(skuID)
		if err != nil {
			return nil, err
		}
		if sku == nil {
			return nil, domain.ErrNotFound
		}
	}
	s := &entity.Scheme{
		ID:            uuid.New().String(),
		Description:   in.Description,
		BuySKUID:      in.BuySKUID,
		BuyQuantity:   in.BuyQuantity,
		GetSKUID:      in.GetSKUID,
		GetQuantity:   in.GetQuantity,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		IsGlobal:      in.IsGlobal,
		DistributorID: in.DistributorID,
		StoreID:       in.StoreID,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toSchemeResponse(s), nil
}

// List returns all schemes, stopped ones included.
func (uc *SchemeUseCase) List() ([]dto.SchemeResponse, error) {
	schemes, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SchemeResponse, 0, len(schemes))
	for i := range schemes {
		out = append(out, *toSchemeResponse(&schemes[i]))
	}
	return out, nil
}

// Stop marks a scheme as stopped by the given user. A stopped scheme is
// permanently ineligible regardless of its date window.
func (uc *SchemeUseCase) Stop(id, username string) (*dto.SchemeResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if s.Stopped() {
		return nil, domain.ErrSchemeStopped
	}
	now := time.Now()
	s.StoppedBy = username
	s.StoppedDate = &now
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSchemeResponse(s), nil
}

func toSchemeResponse(s *entity.Scheme) *dto.SchemeResponse {
	return &dto.SchemeResponse{
		ID:            s.ID,
		Description:   s.Description,
		BuySKUID:      s.BuySKUID,
		BuyQuantity:   s.BuyQuantity,
		GetSKUID:      s.GetSKUID,
		GetQuantity:   s.GetQuantity,
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
		IsGlobal:      s.IsGlobal,
		DistributorID: s.DistributorID,
		StoreID:       s.StoreID,
		StoppedBy:     s.StoppedBy,
		StoppedDate:   s.StoppedDate,
	}
}
