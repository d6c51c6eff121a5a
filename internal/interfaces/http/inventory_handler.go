package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/application/inventory"
)

// InventoryHandler atende os movimentos manuais de estoque.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler constrói o handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary  Listar movimentos de estoque (mais recentes primeiro)
// @Tags     inventory
// @Produce  json
// @Success  200  {array}  dto.MovementResponse
// @Router   /inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary  Registrar movimento de estoque (in, out, adjustment)
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Param    body  body  dto.RegisterMovementRequest  true  "Movimento"
// @Success  201   {object}  dto.SuccessResponse
// @Failure  409   {object}  dto.ErrorResponse  "estoque insuficiente"
// @Router   /inventory [post]
func (h *InventoryHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	if err := h.uc.Register(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true})
}
