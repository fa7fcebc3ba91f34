package stock

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/distributor-api/internal/application/dto"
	"github.com/jhoicas/distributor-api/internal/application/ports"
	"github.com/jhoicas/distributor-api/internal/domain"
	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/pricing"
	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

// TransferUseCase plant -> store dispatch transfers. Pricing runs the engine
// in dispatch mode: catalog value only, no tiering, no schemes, plus the
// stock-sufficiency check against the plant.
type TransferUseCase struct {
	txRunner     ports.TxRunner
	skuRepo      repository.SKURepository
	stockRepo    repository.StockRepository
	storeRepo    repository.StoreRepository
	transferRepo repository.TransferRepository
}

// NewTransferUseCase builds the use case.
func NewTransferUseCase(
	txRunner ports.TxRunner,
	skuRepo repository.SKURepository,
	stockRepo repository.StockRepository,
	storeRepo repository.StoreRepository,
	transferRepo repository.TransferRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:     txRunner,
		skuRepo:      skuRepo,
		stockRepo:    stockRepo,
		storeRepo:    storeRepo,
		transferRepo: transferRepo,
	}
}

// Quote previews the dispatch calculation against current plant stock.
func (uc *TransferUseCase) Quote(items []dto.TransferItemRequest) (*dto.TransferQuoteResponse, error) {
	result, err := uc.compute(items)
	if err != nil {
		return nil, err
	}
	return &dto.TransferQuoteResponse{
		DisplayItems: result.Items,
		TotalValue:   result.TotalValue,
		StockCheck:   result.StockCheck,
	}, nil
}

func (uc *TransferUseCase) compute(items []dto.TransferItemRequest) (pricing.Result, error) {
	skus, err := uc.skuRepo.List()
	if err != nil {
		return pricing.Result{}, err
	}
	plantRows, err := uc.stockRepo.ListByLocation(entity.LocationPlant)
	if err != nil {
		return pricing.Result{}, err
	}
	quantities := make(map[string]int, len(items))
	for _, item := range items {
		quantities[item.SKUID] += item.Quantity
	}
	stock := make(map[string]pricing.StockLevel, len(plantRows))
	for _, row := range plantRows {
		stock[row.SKUID] = pricing.StockLevel{Quantity: row.Quantity, Reserved: row.Reserved}
	}
	return pricing.Calculate(pricing.Input{
		Mode:       pricing.ModeDispatch,
		Quantities: quantities,
		SKUs:       skus,
		Stock:      stock,
		Today:      time.Now(),
	}), nil
}

// Create recomputes the dispatch quote, refuses on plant stock shortfall and
// atomically creates the transfer with its lines while reserving plant stock.
func (uc *TransferUseCase) Create(ctx context.Context, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	result, err := uc.compute(in.Items)
	if err != nil {
		return nil, err
	}
	if len(result.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if result.StockCheck.HasIssues {
		return nil, domain.ErrInsufficientStock
	}

	now := time.Now()
	transfer := &entity.StockTransfer{
		ID:                 uuid.New().String(),
		DestinationStoreID: store.ID,
		Date:               now,
		Status:             entity.TransferPending,
		InitiatedBy:        in.Username,
		TotalValue:         result.TotalValue,
	}

	err = uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		if err := r.Transfers.Create(transfer); err != nil {
			return err
		}
		sorted := append([]pricing.DisplayItem(nil), result.Items...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].SKUID < sorted[j].SKUID })
		for _, line := range sorted {
			item := &entity.StockTransferItem{
				ID:         uuid.New().String(),
				TransferID: transfer.ID,
				SKUID:      line.SKUID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
			}
			if err := r.Transfers.CreateItem(item); err != nil {
				return err
			}
			stock, err := r.Stock.GetForUpdate(line.SKUID, entity.LocationPlant)
			if err != nil {
				return err
			}
			if stock == nil || stock.Available() < line.Quantity {
				return domain.ErrInsufficientStock
			}
			stock.Reserved += line.Quantity
			stock.UpdatedAt = now
			if err := r.Stock.Upsert(stock); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTransferResponse(transfer), nil
}

// Deliver completes a pending transfer: plant stock drops (reservation
// consumed) and the destination store's stock rises by the same quantities.
func (uc *TransferUseCase) Deliver(ctx context.Context, transferID string) (*dto.TransferResponse, error) {
	var delivered *entity.StockTransfer
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		transfer, err := r.Transfers.GetByID(transferID)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		if transfer.Status != entity.TransferPending {
			return domain.ErrConflict
		}
		items, err := r.Transfers.ListItems(transferID)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, item := range items {
			plant, err := r.Stock.GetForUpdate(item.SKUID, entity.LocationPlant)
			if err != nil {
				return err
			}
			if plant == nil {
				return domain.ErrInsufficientStock
			}
			plant.Quantity -= item.Quantity
			plant.Reserved -= item.Quantity
			plant.UpdatedAt = now
			if err := r.Stock.Upsert(plant); err != nil {
				return err
			}

			dest, err := r.Stock.GetForUpdate(item.SKUID, transfer.DestinationStoreID)
			if err != nil {
				return err
			}
			if dest == nil {
				dest = &entity.StockItem{SKUID: item.SKUID, LocationID: transfer.DestinationStoreID}
			}
			dest.Quantity += item.Quantity
			dest.UpdatedAt = now
			if err := r.Stock.Upsert(dest); err != nil {
				return err
			}
		}
		transfer.Status = entity.TransferDelivered
		transfer.DeliveredDate = &now
		if err := r.Transfers.Update(transfer); err != nil {
			return err
		}
		delivered = transfer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTransferResponse(delivered), nil
}

// List returns all transfers, newest first by repository order.
func (uc *TransferUseCase) List() ([]dto.TransferResponse, error) {
	transfers, err := uc.transferRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferResponse, 0, len(transfers))
	for i := range transfers {
		out = append(out, *toTransferResponse(&transfers[i]))
	}
	return out, nil
}

func toTransferResponse(t *entity.StockTransfer) *dto.TransferResponse {
	return &dto.TransferResponse{
		ID:                 t.ID,
		DestinationStoreID: t.DestinationStoreID,
		Date:               t.Date,
		Status:             t.Status,
		InitiatedBy:        t.InitiatedBy,
		DeliveredDate:      t.DeliveredDate,
		TotalValue:         t.TotalValue,
	}
}
