package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/distributor-api/internal/application/dto"
	"github.com/jhoicas/distributor-api/internal/application/ports"
	"github.com/jhoicas/distributor-api/internal/domain"
	"github.com/jhoicas/distributor-api/internal/domain/entity"
	"github.com/jhoicas/distributor-api/internal/domain/repository"
)

// WalletUseCase wallet recharges and ledger listing. Balance arithmetic runs
// inside a transaction with the wallet owner's row locked.
type WalletUseCase struct {
	txRunner   ports.TxRunner
	walletRepo repository.WalletRepository
}

// NewWalletUseCase builds the use case.
func NewWalletUseCase(txRunner ports.TxRunner, walletRepo repository.WalletRepository) *WalletUseCase {
	return &WalletUseCase{txRunner: txRunner, walletRepo: walletRepo}
}

// Recharge credits a distributor or store wallet and records a RECHARGE
// ledger entry. Exactly one owner id must be set and the amount positive.
func (uc *WalletUseCase) Recharge(ctx context.Context, in dto.RechargeRequest) (*dto.WalletTransactionResponse, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if (in.DistributorID == "") == (in.StoreID == "") {
		return nil, domain.ErrInvalidInput
	}

	var out *entity.WalletTransaction
	err := uc.txRunner.Run(ctx, func(r ports.TxRepos) error {
		var balanceAfter decimal.Decimal
		if in.DistributorID != "" {
			d, err := r.Distributors.GetForUpdate(in.DistributorID)
			if err != nil {
				return err
			}
			if d == nil {
				return domain.ErrNotFound
			}
			balanceAfter = d.WalletBalance.Add(in.Amount)
			if err := r.Distributors.UpdateWalletBalance(d.ID, balanceAfter); err != nil {
				return err
			}
		} else {
			s, err := r.Stores.GetForUpdate(in.StoreID)
			if err != nil {
				return err
			}
			if s == nil {
				return domain.ErrNotFound
			}
			balanceAfter = s.WalletBalance.Add(in.Amount)
			if err := r.Stores.UpdateWalletBalance(s.ID, balanceAfter); err != nil {
				return err
			}
		}
		out = &entity.WalletTransaction{
			ID:            uuid.New().String(),
			DistributorID: in.DistributorID,
			StoreID:       in.StoreID,
			Date:          time.Now(),
			Type:          entity.TxRecharge,
			Amount:        in.Amount,
			BalanceAfter:  balanceAfter,
			PaymentMethod: in.PaymentMethod,
			Remarks:       in.Remarks,
			InitiatedBy:   in.Username,
		}
		return r.Wallet.CreateTransaction(out)
	})
	if err != nil {
		return nil, err
	}
	return toWalletTransactionResponse(out), nil
}

// ListByDistributor returns the ledger of one distributor wallet.
func (uc *WalletUseCase) ListByDistributor(distributorID string) ([]dto.WalletTransactionResponse, error) {
	txs, err := uc.walletRepo.ListByDistributor(distributorID)
	if err != nil {
		return nil, err
	}
	return toWalletTransactionResponses(txs), nil
}

// ListByStore returns the ledger of one store wallet.
func (uc *WalletUseCase) ListByStore(storeID string) ([]dto.WalletTransactionResponse, error) {
	txs, err := uc.walletRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}
	return toWalletTransactionResponses(txs), nil
}

func toWalletTransactionResponses(txs []entity.WalletTransaction) []dto.WalletTransactionResponse {
	out := make([]dto.WalletTransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, *toWalletTransactionResponse(&txs[i]))
	}
	return out
}

func toWalletTransactionResponse(t *entity.WalletTransaction) *dto.WalletTransactionResponse {
	return &dto.WalletTransactionResponse{
		ID:            t.ID,
		DistributorID: t.DistributorID,
		StoreID:       t.StoreID,
		Date:          t.Date,
		Type:          t.Type,
		Amount:        t.Amount,
		BalanceAfter:  t.BalanceAfter,
		OrderID:       t.OrderID,
		TransferID:    t.TransferID,
		PaymentMethod: t.PaymentMethod,
		Remarks:       t.Remarks,
		InitiatedBy:   t.InitiatedBy,
	}
}
