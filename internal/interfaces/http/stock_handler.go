package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distributor-api/internal/application/dto"
	"github.com/jhoicas/distributor-api/internal/application/stock"
	"github.com/jhoicas/distributor-api/internal/domain"
	"github.com/jhoicas/distributor-api/internal/domain/entity"
)

// StockHandler handles production and stock listing requests (protected).
type StockHandler struct {
	uc *stock.StockUseCase
}

// NewStockHandler builds the handler.
func NewStockHandler(uc *stock.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// RecordProduction godoc
// @Summary      Record produced stock at the plant
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductionRequest  true  "produced lines"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/production [post]
func (h *StockHandler) RecordProduction(c *fiber.Ctx) error {
	var in dto.ProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Username == "" {
		in.Username = GetUserID(c)
	}
	if err := h.uc.RecordProduction(c.Context(), in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lines need a SKU and a positive quantity"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "production recorded"})
}

// ListByLocation godoc
// @Summary      List stock at a location
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        locationId  path  string  true  "location id (plant or a store id)"
// @Success      200  {array}  dto.StockItemResponse
// @Router       /api/stock/{locationId} [get]
func (h *StockHandler) ListByLocation(c *fiber.Ctx) error {
	locationID := c.Params("locationId")
	if locationID == "" {
		locationID = entity.LocationPlant
	}
	out, err := h.uc.ListByLocation(locationID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
