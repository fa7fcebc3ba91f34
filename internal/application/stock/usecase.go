package stock

import (
	"context"
	"time"

	"github.com/jhoicas/distributor-api/internal/application/dto"
	"github.com/jhoicas/distributor-api/internal/application/ports"
	"github.com/jhoicas/distributor-api/internal/domain"
	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

// StockUseCase plant stock production and per-location stock queries.
type StockUseCase struct {
	txRunner  ports.TxRunner
	stockRepo repository.StockRepository
}

// NewStockUseCase builds the use case.
func NewStockUseCase(txRunner ports.TxRunner, stockRepo repository.StockRepository) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, stockRepo: stockRepo}
}

// RecordProduction adds produced quantities to the plant location.
func (uc *StockUseCase) RecordProduction(ctx context.Context, in dto.ProductionRequest) error {
	if len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.SKUID == "" || item.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		for _, item := range in.Items {
			row, err := r.Stock.GetForUpdate(item.SKUID, entity.LocationPlant)
			if err != nil {
				return err
			}
			if row == nil {
				row = &entity.StockItem{SKUID: item.SKUID, LocationID: entity.LocationPlant}
			}
			row.Quantity += item.Quantity
			row.UpdatedAt = now
			if err := r.Stock.Upsert(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListByLocation returns the stock rows of one location.
func (uc *StockUseCase) ListByLocation(locationID string) ([]dto.StockItemResponse, error) {
	rows, err := uc.stockRepo.ListByLocation(locationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockItemResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.StockItemResponse{
			SKUID:      row.SKUID,
			LocationID: row.LocationID,
			Quantity:   row.Quantity,
			Reserved:   row.Reserved,
			Available:  row.Available(),
		})
	}
	return out, nil
}
