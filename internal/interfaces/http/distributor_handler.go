package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distributor-api/internal/application/dto"
	"github.com/jhoicas/distributor-api/internal/application/usecase"
	"github.com/jhoicas/distributor-api/internal/domain"
	"github.com/jhoicas/distributor-api/internal/domain/entity"
)

// DistributorHandler handles distributor account requests (protected).
type DistributorHandler struct {
	uc *usecase.DistributorUseCase
}

// NewDistributorHandler builds the handler.
func NewDistributorHandler(uc *usecase.DistributorUseCase) *DistributorHandler {
	return &DistributorHandler{uc: uc}
}

// Create godoc
// @Summary      Register distributor
// @Tags         distributors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDistributorRequest  true  "distributor data"
// @Success      201   {object}  dto.DistributorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/distributors [post]
func (h *DistributorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDistributorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "TIER_NOT_FOUND", Message: "price tier does not exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get distributor by id
// @Tags         distributors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "distributor id"
// @Success      200  {object}  dto.DistributorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distributors/{id} [get]
func (h *DistributorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "distributor not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List distributors
// @Tags         distributors
// @Security     Bearer
// @Produce      json
// @Param        storeId  query  string  false  "filter by assigned store"
// @Success      200  {array}  dto.DistributorResponse
// @Router       /api/distributors [get]
func (h *DistributorHandler) List(c *fiber.Ctx) error {
	storeID := c.Query("storeId")
	// Store admins only see their own distributors.
	if GetRole(c) == entity.RoleStoreAdmin {
		storeID = GetStoreID(c)
	}
	out, err := h.uc.List(storeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update distributor
// @Tags         distributors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "distributor id"
// @Param        body  body  dto.UpdateDistributorRequest  true  "fields to update"
// @Success      200   {object}  dto.DistributorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/distributors/{id} [put]
func (h *DistributorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDistributorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "TIER_NOT_FOUND", Message: "price tier does not exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "distributor not found"})
	}
	return c.JSON(out)
}
