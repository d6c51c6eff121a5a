package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/application/license"
)

// LicenseHandler atende a licença singleton: consulta, ativação e limpeza.
type LicenseHandler struct {
	svc *license.Service
}

// NewLicenseHandler constrói o handler.
func NewLicenseHandler(svc *license.Service) *LicenseHandler {
	return &LicenseHandler{svc: svc}
}

// Info godoc
// @Summary  Estado corrente da licença
// @Tags     license
// @Produce  json
// @Success  200  {object}  dto.LicenseInfoResponse
// @Router   /license [get]
func (h *LicenseHandler) Info(c *fiber.Ctx) error {
	out, err := h.svc.Info()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary  Ativar o sistema com um código
// @Tags     license
// @Accept   json
// @Produce  json
// @Param    body  body  dto.ActivateLicenseRequest  true  "Código de ativação"
// @Success  200   {object}  dto.LicenseInfoResponse
// @Failure  400   {object}  dto.ErrorResponse  "código inválido"
// @Router   /license [post]
func (h *LicenseHandler) Activate(c *fiber.Ctx) error {
	var in dto.ActivateLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	if in.ActivationCode == "" {
		return badRequest(c, "activationCode é obrigatório")
	}
	out, err := h.svc.Activate(in.ActivationCode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary  Remover a licença (volta ao estado não ativado)
// @Tags     license
// @Security Bearer
// @Produce  json
// @Success  200  {object}  dto.SuccessResponse
// @Router   /license [delete]
func (h *LicenseHandler) Clear(c *fiber.Ctx) error {
	if err := h.svc.Clear(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
