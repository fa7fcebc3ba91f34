package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/distributor-api/internal/application/dto"
	"github.com/jhoicas/distributor-api/internal/domain"
	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

// DistributorUseCase CRUD use cases for distributor accounts. Wallet
// balances change only through the ordering and wallet use cases.
type DistributorUseCase struct {
	repo     repository.DistributorRepository
	tierRepo repository.PriceTierRepository
}

// NewDistributorUseCase builds the use case.
func NewDistributorUseCase(repo repository.DistributorRepository, tierRepo repository.PriceTierRepository) *DistributorUseCase {
	return &DistributorUseCase{repo: repo, tierRepo: tierRepo}
}

// Create registers a distributor with a zero wallet balance.
func (uc *DistributorUseCase) Create(in dto.CreateDistributorRequest) (*dto.DistributorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PriceTierID != "" {
		tier, err := uc.tierRepo.GetTier(in.PriceTierID)
		if err != nil {
			return nil, err
		}
		if tier == nil {
			return nil, domain.ErrNotFound
		}
	}
	d := &entity.Distributor{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Phone:             in.Phone,
		State:             in.State,
		Area:              in.Area,
		CreditLimit:       in.CreditLimit,
		GSTIN:             in.GSTIN,
		BillingAddress:    in.BillingAddress,
		HasSpecialSchemes: in.HasSpecialSchemes,
		ASMName:           in.ASMName,
		ExecutiveName:     in.ExecutiveName,
		WalletBalance:     decimal.Zero,
		DateAdded:         time.Now(),
		PriceTierID:       in.PriceTierID,
		StoreID:           in.StoreID,
	}
	if err := uc.repo.Create(d); err != nil {
		return nil, err
	}
	return toDistributorResponse(d), nil
}

// GetByID returns a distributor or nil.
func (uc *DistributorUseCase) GetByID(id string) (*dto.DistributorResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil || d == nil {
		return nil, err
	}
	return toDistributorResponse(d), nil
}

// List returns distributors, optionally filtered by store.
func (uc *DistributorUseCase) List(storeID string) ([]dto.DistributorResponse, error) {
	var (
		ds  []entity.Distributor
		err error
	)
	if storeID != "" {
		ds, err = uc.repo.ListByStore(storeID)
	} else {
		ds, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.DistributorResponse, 0, len(ds))
	for i := range ds {
		out = append(out, *toDistributorResponse(&ds[i]))
	}
	return out, nil
}

// Update applies a partial update. Tier and store assignments may be cleared
// with empty strings.
func (uc *DistributorUseCase) Update(id string, in dto.UpdateDistributorRequest) (*dto.DistributorResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Phone != nil {
		d.Phone = *in.Phone
	}
	if in.State != nil {
		d.State = *in.State
	}
	if in.Area != nil {
		d.Area = *in.Area
	}
	if in.CreditLimit != nil {
		d.CreditLimit = *in.CreditLimit
	}
	if in.GSTIN != nil {
		d.GSTIN = *in.GSTIN
	}
	if in.BillingAddress != nil {
		d.BillingAddress = *in.BillingAddress
	}
	if in.HasSpecialSchemes != nil {
		d.HasSpecialSchemes = *in.HasSpecialSchemes
	}
	if in.ASMName != nil {
		d.ASMName = *in.ASMName
	}
	if in.ExecutiveName != nil {
		d.ExecutiveName = *in.ExecutiveName
	}
	if in.PriceTierID != nil {
		if *in.PriceTierID != "" {
			tier, err := uc.tierRepo.GetTier(*in.PriceTierID)
			if err != nil {
				return nil, err
			}
			if tier == nil {
				return nil, domain.ErrNotFound
			}
		}
		d.PriceTierID = *in.PriceTierID
	}
	if in.StoreID != nil {
		d.StoreID = *in.StoreID
	}
	if err := uc.repo.Update(d); err != nil {
		return nil, err
	}
	return toDistributorResponse(d), nil
}

func toDistributorResponse(d *entity.Distributor) *dto.DistributorResponse {
	return &dto.DistributorResponse{
		ID:                d.ID,
		Name:              d.Name,
		Phone:             d.Phone,
		State:             d.State,
		Area:              d.Area,
		CreditLimit:       d.CreditLimit,
		GSTIN:             d.GSTIN,
		BillingAddress:    d.BillingAddress,
		HasSpecialSchemes: d.HasSpecialSchemes,
		ASMName:           d.ASMName,
		ExecutiveName:     d.ExecutiveName,
		WalletBalance:     d.WalletBalance,
		DateAdded:         d.DateAdded,
		PriceTierID:       d.PriceTierID,
		StoreID:           d.StoreID,
	}
}
