package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diegofsiilva/cenas-bar/internal/application/auth"
	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/application/license"
)

// AdminHandler atende o painel administrativo: login com senha mestre e
// emissão de códigos de ativação.
type AdminHandler struct {
	authUC *auth.UseCase
	lic    *license.Service
}

// NewAdminHandler constrói o handler.
func NewAdminHandler(authUC *auth.UseCase, lic *license.Service) *AdminHandler {
	return &AdminHandler{authUC: authUC, lic: lic}
}

// Login godoc
// @Summary  Login administrativo com a senha mestre
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body  body  dto.AdminLoginRequest  true  "Senha mestre"
// @Success  200   {object}  dto.AdminLoginResponse
// @Failure  401   {object}  dto.ErrorResponse
// @Router   /admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var in dto.AdminLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	token, err := h.authUC.Login(in.MasterPassword)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.AdminLoginResponse{Token: token})
}

// GenerateCode godoc
// @Summary  Emitir código de ativação válido por N dias
// @Tags     admin
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.GenerateCodeRequest  true  "Dias de validade"
// @Success  201   {object}  dto.GenerateCodeResponse
// @Router   /admin/activation-codes [post]
func (h *AdminHandler) GenerateCode(c *fiber.Ctx) error {
	var in dto.GenerateCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo inválido")
	}
	code, err := h.lic.IssueCode(in.Days)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.GenerateCodeResponse{Code: code})
}
