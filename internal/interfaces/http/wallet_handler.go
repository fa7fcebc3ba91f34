package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distributor-api/internal/application/dto"
	"github.com/jhoicas/distributor-api/internal/application/usecase"
	"github.com/jhoicas/distributor-api/internal/domain"
)

// WalletHandler handles wallet recharge and ledger requests (protected).
type WalletHandler struct {
	uc *usecase.WalletUseCase
}

// NewWalletHandler builds the handler.
func NewWalletHandler(uc *usecase.WalletUseCase) *WalletHandler {
	return &WalletHandler{uc: uc}
}

// Recharge godoc
// @Summary      Credit a wallet
// @Description  Credits a distributor or store wallet and appends a ledger
// @Description  entry, atomically.
// @Tags         wallet
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RechargeRequest  true  "target wallet and amount"
// @Success      201   {object}  dto.WalletTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/wallet/recharge [post]
func (h *WalletHandler) Recharge(c *fiber.Ctx) error {
	var in dto.RechargeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Username == "" {
		in.Username = GetUserID(c)
	}
	out, err := h.uc.Recharge(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "a positive amount and exactly one of distributorId or storeId are required"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "wallet owner not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByDistributor godoc
// @Summary      Distributor wallet ledger
// @Tags         wallet
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "distributor id"
// @Success      200  {array}  dto.WalletTransactionResponse
// @Router       /api/wallet/distributors/{id} [get]
func (h *WalletHandler) ListByDistributor(c *fiber.Ctx) error {
	out, err := h.uc.ListByDistributor(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByStore godoc
// @Summary      Store wallet ledger
// @Tags         wallet
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "store id"
// @Success      200  {array}  dto.WalletTransactionResponse
// @Router       /api/wallet/stores/{id} [get]
func (h *WalletHandler) ListByStore(c *fiber.Ctx) error {
	out, err := h.uc.ListByStore(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
