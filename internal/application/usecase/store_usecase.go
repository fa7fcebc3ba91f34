package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/distributor-api/internal/application/dto"
	"github.com/jhoicas/distributor-api/internal/domain"
	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

// StoreUseCase CRUD use cases for stores.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase builds the use case.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create creates a store with a zero wallet balance.
func (uc *StoreUseCase) Create(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Store{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Location:      in.Location,
		AddressLine1:  in.AddressLine1,
		AddressLine2:  in.AddressLine2,
		Email:         in.Email,
		Phone:         in.Phone,
		GSTIN:         in.GSTIN,
		WalletBalance: decimal.Zero,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toStoreResponse(s), nil
}

// GetByID returns a store or nil.
func (uc *StoreUseCase) GetByID(id string) (*dto.StoreResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil || s == nil {
		return nil, err
	}
	return toStoreResponse(s), nil
}

// List returns all stores.
func (uc *StoreUseCase) List() ([]dto.StoreResponse, error) {
	stores, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for i := range stores {
		out = append(out, *toStoreResponse(&stores[i]))
	}
	return out, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	return &dto.StoreResponse{
		ID:            s.ID,
		Name:          s.Name,
		Location:      s.Location,
		AddressLine1:  s.AddressLine1,
		AddressLine2:  s.AddressLine2,
		Email:         s.Email,
		Phone:         s.Phone,
		GSTIN:         s.GSTIN,
		WalletBalance: s.WalletBalance,
	}
}
