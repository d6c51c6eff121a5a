package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diegofsiilva/cenas-bar/internal/application/usecase"
)

// SaleHandler atende o histórico de vendas. Vendas não são criadas por aqui:
// nascem apenas da finalização de comanda.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// List godoc
// @Summary  Listar vendas (mais recentes primeiro)
// @Tags     sales
// @Produce  json
// @Success  200  {array}  dto.SaleResponse
// @Router   /sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary  Buscar venda por ID
// @Tags     sales
// @Produce  json
// @Param    id  path  string  true  "ID da venda"
// @Success  200  {object}  dto.SaleResponse
// @Router   /sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "id é obrigatório")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary  Cupom da venda em PDF
// @Tags     sales
// @Produce  application/pdf
// @Param    id  path  string  true  "ID da venda"
// @Success  200  {file}  binary
// @Router   /sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "id é obrigatório")
	}
	pdf, err := h.uc.Receipt(id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="cupom-`+id+`.pdf"`)
	return c.Send(pdf)
}
