package ordering

import (
	"time"

	"github.com/jhoicas/distributor-api/internal/application/dto"
	"github.com/jhoicas/distributor-api/internal/application/ports"
	"github.com/jhoicas/distributor-api/internal/domain"
	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/pricing"
	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

// OrderUseCase runs the pricing engine over a fresh data snapshot and drives
// the order lifecycle: quote (pure preview), place, deliver, cancel.
type OrderUseCase struct {
	txRunner        ports.TxRunner
	distributorRepo repository.DistributorRepository
	skuRepo         repository.SKURepository
	schemeRepo      repository.SchemeRepository
	tierRepo        repository.PriceTierRepository
	stockRepo       repository.StockRepository
	orderRepo       repository.OrderRepository
}

// NewOrderUseCase builds the use case.
func NewOrderUseCase(
	txRunner ports.TxRunner,
	distributorRepo repository.DistributorRepository,
	skuRepo repository.SKURepository,
	schemeRepo repository.SchemeRepository,
	tierRepo repository.PriceTierRepository,
	stockRepo repository.StockRepository,
	orderRepo repository.OrderRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:        txRunner,
		distributorRepo: distributorRepo,
		skuRepo:         skuRepo,
		schemeRepo:      schemeRepo,
		tierRepo:        tierRepo,
		stockRepo:       stockRepo,
		orderRepo:       orderRepo,
	}
}

// Quote previews the calculation for display. Read-only: no stock, wallet or
// order rows are touched.
func (uc *OrderUseCase) Quote(in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	result, _, err := uc.compute(in.DistributorID, in.Items)
	if err != nil {
		return nil, err
	}
	return &dto.QuoteResponse{
		DisplayItems:   result.Items,
		Subtotal:       result.Subtotal,
		GSTAmount:      result.GSTAmount,
		GrandTotal:     result.GrandTotal,
		StockCheck:     result.StockCheck,
		AppliedSchemes: result.AppliedSchemes,
	}, nil
}

// compute loads the read-only snapshot (catalog, schemes, tier rows, stock at
// the distributor's source location) and runs the engine in order mode.
func (uc *OrderUseCase) compute(distributorID string, items []dto.QuoteItemRequest) (pricing.Result, *entity.Distributor, error) {
	distributor, err := uc.distributorRepo.GetByID(distributorID)
	if err != nil {
		return pricing.Result{}, nil, err
	}
	if distributor == nil {
		return pricing.Result{}, nil, domain.ErrNotFound
	}

	skus, err := uc.skuRepo.List()
	if err != nil {
		return pricing.Result{}, nil, err
	}
	schemes, err := uc.schemeRepo.List()
	if err != nil {
		return pricing.Result{}, nil, err
	}
	tierItems, err := uc.tierRepo.ListItems()
	if err != nil {
		return pricing.Result{}, nil, err
	}
	stockRows, err := uc.stockRepo.ListByLocation(distributor.SourceLocationID())
	if err != nil {
		return pricing.Result{}, nil, err
	}

	quantities := make(map[string]int, len(items))
	for _, item := range items {
		quantities[item.SKUID] += item.Quantity
	}
	stock := make(map[string]pricing.StockLevel, len(stockRows))
	for _, row := range stockRows {
		stock[row.SKUID] = pricing.StockLevel{Quantity: row.Quantity, Reserved: row.Reserved}
	}

	result := pricing.Calculate(pricing.Input{
		Mode:        pricing.ModeOrder,
		Distributor: distributor,
		Quantities:  quantities,
		SKUs:        skus,
		Schemes:     schemes,
		TierItems:   tierItems,
		Stock:       stock,
		Today:       time.Now(),
	})
	return result, distributor, nil
}

// GetByID returns an order header or nil.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(id)
	if err != nil || o == nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// List returns order headers, optionally filtered by distributor.
func (uc *OrderUseCase) List(distributorID string) ([]dto.OrderResponse, error) {
	var (
		orders []entity.Order
		err    error
	)
	if distributorID != "" {
		orders, err = uc.orderRepo.ListByDistributor(distributorID)
	} else {
		orders, err = uc.orderRepo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *toOrderResponse(&orders[i]))
	}
	return out, nil
}

// ListItems returns the persisted lines of one order.
func (uc *OrderUseCase) ListItems(orderID string) ([]dto.OrderItemResponse, error) {
	items, err := uc.orderRepo.ListItems(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.OrderItemResponse{
			ID:        item.ID,
			OrderID:   item.OrderID,
			SKUID:     item.SKUID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			IsFreebie: item.IsFreebie,
		})
	}
	return out, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:             o.ID,
		DistributorID:  o.DistributorID,
		Date:           o.Date,
		TotalAmount:    o.TotalAmount,
		Status:         o.Status,
		PlacedByExecID: o.PlacedByExecID,
		DeliveredDate:  o.DeliveredDate,
	}
}
