package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/application/usecase"
)

// ProductHandler atende as rotas de produtos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary  Listar produtos
// @Tags     products
// @Produce  json
// @Success  200  {array}  dto.ProductResponse
// @Router   /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary  Listar produtos com estoque no limiar de alerta ou abaixo
// @Tags     products
// @Produce  json
// @Success  200  {array}  dto.ProductResponse
// @Router   /products/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.GetLowStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary  Criar produto
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CreateProductRequest  true  "Dados do produto"
// @Success  201   {object}  dto.SuccessResponse
// @Router   /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	if _, err := h.uc.Create(in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true})
}

// Update godoc
// @Summary  Atualizar produto (patch; estoque não muda por aqui)
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    body  body  dto.UpdateProductRequest  true  "Campos a alterar"
// @Success  200   {object}  dto.ProductResponse
// @Router   /products [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
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
// @Summary  Excluir produto
// @Tags     products
// @Produce  json
// @Param    id  query  string  true  "ID do produto"
// @Success  200  {object}  dto.SuccessResponse
// @Router   /products [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return badRequest(c, "id é obrigatório")
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
