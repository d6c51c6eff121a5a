package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/application/usecase"
)

// CategoryHandler atende as rotas de categorias.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler constrói o handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary  Listar categorias
// @Tags     categories
// @Produce  json
// @Success  200  {array}  dto.CategoryResponse
// @Router   /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary  Criar categoria
// @Tags     categories
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CreateCategoryRequest  true  "Dados da categoria"
// @Success  201   {object}  dto.SuccessResponse
// @Router   /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	if _, err := h.uc.Create(in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true})
}

// Update godoc
// @Summary  Atualizar categoria (patch)
// @Tags     categories
// @Accept   json
// @Produce  json
// @Param    body  body  dto.UpdateCategoryRequest  true  "Campos a alterar"
// @Success  200   {object}  dto.CategoryResponse
// @Router   /categories [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
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
// @Summary  Excluir categoria
// @Tags     categories
// @Produce  json
// @Param    id  query  string  true  "ID da categoria"
// @Success  200  {object}  dto.SuccessResponse
// @Router   /categories [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return badRequest(c, "id é obrigatório")
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
