package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diegofsiilva/cenas-bar/internal/application/command"
	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
)

// CommandHandler atende o ciclo de vida das comandas.
type CommandHandler struct {
	uc      *command.UseCase
	metrics *Metrics
}

// NewCommandHandler constrói o handler.
func NewCommandHandler(uc *command.UseCase, metrics *Metrics) *CommandHandler {
	return &CommandHandler{uc: uc, metrics: metrics}
}

// List godoc
// @Summary  Listar comandas; com ?tableId= devolve a comanda aberta da mesa (ou null)
// @Tags     commands
// @Produce  json
// @Param    tableId  query  string  false  "ID da mesa"
// @Success  200  {array}  dto.CommandResponse
// @Router   /commands [get]
func (h *CommandHandler) List(c *fiber.Ctx) error {
	if tableID := c.Query("tableId"); tableID != "" {
		out, err := h.uc.GetOpenByTable(tableID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Open godoc
// @Summary  Abrir comanda em uma mesa
// @Tags     commands
// @Accept   json
// @Produce  json
// @Param    body  body  dto.OpenCommandRequest  true  "Mesa"
// @Success  201   {object}  dto.CommandResponse
// @Failure  409   {object}  dto.ErrorResponse  "mesa já tem comanda aberta"
// @Router   /commands [post]
func (h *CommandHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenCommandRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	out, err := h.uc.Open(in)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.CommandsOpened.Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddItem godoc
// @Summary  Lançar item na comanda
// @Tags     commands
// @Accept   json
// @Produce  json
// @Param    id    path  string              true  "ID da comanda"
// @Param    body  body  dto.AddItemRequest  true  "Produto e quantidade"
// @Success  200   {object}  dto.CommandResponse
// @Router   /commands/{id}/items [post]
func (h *CommandHandler) AddItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "id é obrigatório")
	}
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	out, err := h.uc.AddItem(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary  Remover item da comanda
// @Tags     commands
// @Produce  json
// @Param    id      path  string  true  "ID da comanda"
// @Param    itemId  path  string  true  "ID do item"
// @Success  200     {object}  dto.CommandResponse
// @Router   /commands/{id}/items/{itemId} [delete]
func (h *CommandHandler) RemoveItem(c *fiber.Ctx) error {
	id := c.Params("id")
	itemID := c.Params("itemId")
	if id == "" || itemID == "" {
		return badRequest(c, "id e itemId são obrigatórios")
	}
	out, err := h.uc.RemoveItem(id, itemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary  Atualizar comanda aberta (patch de itens; subtotais recalculados no servidor)
// @Tags     commands
// @Accept   json
// @Produce  json
// @Param    body  body  dto.UpdateCommandRequest  true  "Itens"
// @Success  200   {object}  dto.CommandResponse
// @Router   /commands [put]
func (h *CommandHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCommandRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	out, err := h.uc.Patch(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Finalize godoc
// @Summary  Finalizar comanda em venda (transacional, baixa de estoque)
// @Tags     commands
// @Accept   json
// @Produce  json
// @Param    id    path  string                      true  "ID da comanda"
// @Param    body  body  dto.FinalizeCommandRequest  true  "Forma de pagamento"
// @Success  200   {object}  dto.SaleResponse
// @Failure  409   {object}  dto.ErrorResponse  "comanda fechada, vazia ou estoque insuficiente"
// @Router   /commands/{id}/finalize [post]
func (h *CommandHandler) Finalize(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "id é obrigatório")
	}
	var in dto.FinalizeCommandRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	out, err := h.uc.Finalize(c.Context(), id, in.PaymentMethod)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.SalesFinalized.Inc()
	return c.JSON(out)
}

// Delete godoc
// @Summary  Cancelar comanda aberta (fechada é histórico e não sai)
// @Tags     commands
// @Produce  json
// @Param    id  query  string  true  "ID da comanda"
// @Success  200  {object}  dto.SuccessResponse
// @Router   /commands [delete]
func (h *CommandHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return badRequest(c, "id é obrigatório")
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
