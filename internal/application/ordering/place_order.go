package ordering

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/distributor-api/internal/application/dto"
	"github.com/jhoicas/distributor-api/internal/application/ports"
	"github.com/jhoicas/distributor-api/internal/domain"
	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/pricing"
)

// PlaceOrder recomputes the quote server-side, refuses on stock shortfall or
// insufficient wallet balance, then atomically creates the order with its
// paid and free lines, reserves stock at the source location, debits the
// distributor wallet and records the payment ledger entry.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	result, distributor, err := uc.compute(in.DistributorID, in.Items)
	if err != nil {
		return nil, err
	}
	if len(result.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if result.StockCheck.HasIssues {
		return nil, domain.ErrInsufficientStock
	}

	grandTotal := decimal.NewFromFloat(result.GrandTotal)
	now := time.Now()
	order := &entity.Order{
		ID:             uuid.New().String(),
		DistributorID:  distributor.ID,
		Date:           now,
		TotalAmount:    grandTotal,
		Status:         entity.OrderPending,
		PlacedByExecID: in.Username,
	}
	sourceLocation := distributor.SourceLocationID()

	err = uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		// Wallet check under row lock; the preview check outside the tx is
		// only advisory.
		locked, err := r.Distributors.GetForUpdate(distributor.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if locked.WalletBalance.LessThan(grandTotal) {
			return domain.ErrInsufficientBalance
		}

		if err := r.Orders.Create(order); err != nil {
			return err
		}
		for _, line := range result.Items {
			item := &entity.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				SKUID:     line.SKUID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				IsFreebie: line.IsFreebie,
			}
			if err := r.Orders.CreateItem(item); err != nil {
				return err
			}
		}

		if err := reserveStock(r, sourceLocation, result.Items, now); err != nil {
			return err
		}

		balanceAfter := locked.WalletBalance.Sub(grandTotal)
		if err := r.Distributors.UpdateWalletBalance(locked.ID, balanceAfter); err != nil {
			return err
		}
		return r.Wallet.CreateTransaction(&entity.WalletTransaction{
			ID:            uuid.New().String(),
			DistributorID: locked.ID,
			Date:          now,
			Type:          entity.TxOrderPayment,
			Amount:        grandTotal.Neg(),
			BalanceAfter:  balanceAfter,
			OrderID:       order.ID,
			InitiatedBy:   in.Username,
		})
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Deliver moves a pending order to Delivered, consuming the reservations:
// both on-hand and reserved quantities drop by each line's amount.
func (uc *OrderUseCase) Deliver(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	var delivered *entity.Order
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		order, err := r.Orders.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderPending {
			return domain.ErrConflict
		}
		distributor, err := r.Distributors.GetByID(order.DistributorID)
		if err != nil {
			return err
		}
		if distributor == nil {
			return domain.ErrNotFound
		}
		items, err := r.Orders.ListItems(orderID)
		if err != nil {
			return err
		}
		now := time.Now()
		location := distributor.SourceLocationID()
		for _, item := range items {
			stock, err := r.Stock.GetForUpdate(item.SKUID, location)
			if err != nil {
				return err
			}
			if stock == nil {
				return domain.ErrInsufficientStock
			}
			stock.Quantity -= item.Quantity
			stock.Reserved -= item.Quantity
			stock.UpdatedAt = now
			if err := r.Stock.Upsert(stock); err != nil {
				return err
			}
		}
		order.Status = entity.OrderDelivered
		order.DeliveredDate = &now
		if err := r.Orders.Update(order); err != nil {
			return err
		}
		delivered = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(delivered), nil
}

// Cancel removes a pending order: reservations are released and the wallet
// refunded with an ORDER_REFUND ledger entry. Delivered orders cannot be
// cancelled.
func (uc *OrderUseCase) Cancel(ctx context.Context, orderID, username, remarks string) error {
	return uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		order, err := r.Orders.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderPending {
			return domain.ErrConflict
		}
		distributor, err := r.Distributors.GetForUpdate(order.DistributorID)
		if err != nil {
			return err
		}
		if distributor == nil {
			return domain.ErrNotFound
		}
		items, err := r.Orders.ListItems(orderID)
		if err != nil {
			return err
		}
		now := time.Now()
		location := distributor.SourceLocationID()
		for _, item := range items {
			stock, err := r.Stock.GetForUpdate(item.SKUID, location)
			if err != nil {
				return err
			}
			if stock == nil {
				continue
			}
			stock.Reserved -= item.Quantity
			stock.UpdatedAt = now
			if err := r.Stock.Upsert(stock); err != nil {
				return err
			}
		}

		balanceAfter := distributor.WalletBalance.Add(order.TotalAmount)
		if err := r.Distributors.UpdateWalletBalance(distributor.ID, balanceAfter); err != nil {
			return err
		}
		if err := r.Wallet.CreateTransaction(&entity.WalletTransaction{
			ID:            uuid.New().String(),
			DistributorID: distributor.ID,
			Date:          now,
			Type:          entity.TxOrderRefund,
			Amount:        order.TotalAmount,
			BalanceAfter:  balanceAfter,
			OrderID:       order.ID,
			Remarks:       remarks,
			InitiatedBy:   username,
		}); err != nil {
			return err
		}

		if err := r.Orders.DeleteItems(orderID); err != nil {
			return err
		}
		return r.Orders.Delete(orderID)
	})
}

// reserveStock bumps the reserved counter for every computed line (paid and
// free alike) at the source location. Lines were already validated against
// availability; a missing row here means the snapshot raced a delivery.
func reserveStock(r ports.TxRepos, location string, lines []pricing.DisplayItem, now time.Time) error {
	required := map[string]int{}
	for _, line := range lines {
		required[line.SKUID] += line.Quantity
	}
	skuIDs := make([]string, 0, len(required))
	for skuID := range required {
		skuIDs = append(skuIDs, skuID)
	}
	// Stable lock order across concurrent placements.
	sort.Strings(skuIDs)
	for _, skuID := range skuIDs {
		qty := required[skuID]
		stock, err := r.Stock.GetForUpdate(skuID, location)
		if err != nil {
			return err
		}
		if stock == nil || stock.Available() < qty {
			return domain.ErrInsufficientStock
		}
		stock.Reserved += qty
		stock.UpdatedAt = now
		if err := r.Stock.Upsert(stock); err != nil {
			return err
		}
	}
	return nil
}
