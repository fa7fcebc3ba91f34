package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distributor-api/internal/application/dto"
	"github.com/jhoicas/distributor-api/internal/application/usecase"
	"github.com/jhoicas/distributor-api/internal/domain"
)

// SchemeHandler handles promotional scheme requests (protected).
type SchemeHandler struct {
	uc *usecase.SchemeUseCase
}

// NewSchemeHandler builds the handler.
func NewSchemeHandler(uc *usecase.SchemeUseCase) *SchemeHandler {
	return &SchemeHandler{uc: uc}
}

// Create godoc
// @Summary      Create scheme
// @Tags         schemes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSchemeRequest  true  "scheme data, exactly one scope"
// @Success      201   {object}  dto.SchemeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/schemes [post]
func (h *SchemeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSchemeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "scheme needs positive quantities, a valid window and exactly one scope"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SKU_NOT_FOUND", Message: "buy or get SKU does not exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List schemes
// @Tags         schemes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SchemeResponse
// @Router       /api/schemes [get]
func (h *SchemeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Stop godoc
// @Summary      Stop scheme permanently
// @Tags         schemes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "scheme id"
// @Success      200  {object}  dto.SchemeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/schemes/{id}/stop [post]
func (h *SchemeHandler) Stop(c *fiber.Ctx) error {
	out, err := h.uc.Stop(c.Params("id"), GetUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "scheme not found"})
		}
		if err == domain.ErrSchemeStopped {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_STOPPED", Message: "scheme is already stopped"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
