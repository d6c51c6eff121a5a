package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diegofsiilva/cenas-bar/internal/application/report"
)

// ReportHandler atende o painel consolidado do dia.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard godoc
// @Summary  Indicadores do dia: faturamento, vendas, comandas abertas, estoque baixo, ranking
// @Tags     reports
// @Produce  json
// @Success  200  {object}  dto.DashboardResponse
// @Router   /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
