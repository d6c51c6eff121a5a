package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/application/usecase"
)

// TableHandler atende as rotas de mesas.
type TableHandler struct {
	uc *usecase.TableUseCase
}

// NewTableHandler constrói o handler.
func NewTableHandler(uc *usecase.TableUseCase) *TableHandler {
	return &TableHandler{uc: uc}
}

// List godoc
// @Summary  Listar mesas
// @Tags     tables
// @Produce  json
// @Success  200  {array}  dto.TableResponse
// @Router   /tables [get]
func (h *TableHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary  Criar mesa
// @Tags     tables
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CreateTableRequest  true  "Dados da mesa"
// @Success  201   {object}  dto.SuccessResponse
// @Router   /tables [post]
func (h *TableHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTableRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	if _, err := h.uc.Create(in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true})
}

// Update godoc
// @Summary  Atualizar mesa (patch)
// @Tags     tables
// @Accept   json
// @Produce  json
// @Param    body  body  dto.UpdateTableRequest  true  "Campos a alterar"
// @Success  200   {object}  dto.TableResponse
// @Router   /tables [put]
func (h *TableHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTableRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary  Excluir mesa (rejeita com comanda aberta)
// @Tags     tables
// @Produce  json
// @Param    id  query  string  true  "ID da mesa"
// @Success  200  {object}  dto.SuccessResponse
// @Router   /tables [delete]
func (h *TableHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return badRequest(c, "id é obrigatório")
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
