package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distributor-api/internal/application/dto"
	"github.com/jhoicas/distributor-api/internal/application/usecase"
	"github.com/jhoicas/distributor-api/internal/domain"
)

// PriceTierHandler handles price tier requests (protected).
type PriceTierHandler struct {
	uc *usecase.PriceTierUseCase
}

// NewPriceTierHandler builds the handler.
func NewPriceTierHandler(uc *usecase.PriceTierUseCase) *PriceTierHandler {
	return &PriceTierHandler{uc: uc}
}

// Create godoc
// @Summary      Create price tier
// @Tags         price-tiers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePriceTierRequest  true  "tier data"
// @Success      201   {object}  dto.PriceTierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/price-tiers [post]
func (h *PriceTierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePriceTierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
	}
	out, err := h.uc.CreateTier(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List price tiers
// @Tags         price-tiers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PriceTierResponse
// @Router       /api/price-tiers [get]
func (h *PriceTierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListTiers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get tier with its override rows
// @Tags         price-tiers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "tier id"
// @Success      200  {object}  dto.PriceTierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/price-tiers/{id} [get]
func (h *PriceTierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetTier(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "price tier not found"})
	}
	return c.JSON(out)
}

// UpsertItem godoc
// @Summary      Set tier price for a SKU
// @Tags         price-tiers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "tier id"
// @Param        body  body  dto.PriceTierItemRequest  true  "SKU and override price"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/price-tiers/{id}/items [put]
func (h *PriceTierHandler) UpsertItem(c *fiber.Ctx) error {
	var in dto.PriceTierItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.uc.UpsertItem(c.Params("id"), in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price must be positive"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tier or SKU not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "tier price saved"})
}

// RemoveItem godoc
// @Summary      Remove tier price for a SKU
// @Tags         price-tiers
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "tier id"
// @Param        skuId  path  string  true  "SKU id"
// @Success      200    {object}  dto.MessageResponse
// @Router       /api/price-tiers/{id}/items/{skuId} [delete]
func (h *PriceTierHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.uc.RemoveItem(c.Params("id"), c.Params("skuId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "tier price removed"})
}
