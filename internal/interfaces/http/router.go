package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diegofsiilva/cenas-bar/internal/application/auth"
	"github.com/diegofsiilva/cenas-bar/internal/application/command"
	"github.com/diegofsiilva/cenas-bar/internal/application/inventory"
	"github.com/diegofsiilva/cenas-bar/internal/application/license"
	"github.com/diegofsiilva/cenas-bar/internal/application/report"
	"github.com/diegofsiilva/cenas-bar/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	TableUC     *usecase.TableUseCase
	SaleUC      *usecase.SaleUseCase
	CommandUC   *command.UseCase
	InventoryUC *inventory.UseCase
	ReportUC    *report.UseCase
	LicenseSvc  *license.Service
	AuthUC      *auth.UseCase
	Metrics     *Metrics
	JWTSecret   string
}

// Router registra as rotas da API na raiz. Rotas de recurso são abertas (o
// gating de licença é do cliente); só o painel administrativo exige Bearer.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", deps.Metrics.Handler())

	categories := NewCategoryHandler(deps.CategoryUC)
	app.Get("/categories", categories.List)
	app.Post("/categories", categories.Create)
	app.Put("/categories", categories.Update)
	app.Delete("/categories", categories.Delete)

	products := NewProductHandler(deps.ProductUC)
	app.Get("/products", products.List)
	app.Get("/products/low-stock", products.LowStock)
	app.Post("/products", products.Create)
	app.Put("/products", products.Update)
	app.Delete("/products", products.Delete)

	tables := NewTableHandler(deps.TableUC)
	app.Get("/tables", tables.List)
	app.Post("/tables", tables.Create)
	app.Put("/tables", tables.Update)
	app.Delete("/tables", tables.Delete)

	commands := NewCommandHandler(deps.CommandUC, deps.Metrics)
	app.Get("/commands", commands.List)
	app.Post("/commands", commands.Open)
	app.Put("/commands", commands.Update)
	app.Delete("/commands", commands.Delete)
	app.Post("/commands/:id/items", commands.AddItem)
	app.Delete("/commands/:id/items/:itemId", commands.RemoveItem)
	app.Post("/commands/:id/finalize", commands.Finalize)

	sales := NewSaleHandler(deps.SaleUC)
	app.Get("/sales", sales.List)
	app.Get("/sales/:id", sales.GetByID)
	app.Get("/sales/:id/receipt", sales.Receipt)

	inv := NewInventoryHandler(deps.InventoryUC)
	app.Get("/inventory", inv.List)
	app.Post("/inventory", inv.Register)

	reports := NewReportHandler(deps.ReportUC)
	app.Get("/reports/dashboard", reports.Dashboard)

	lic := NewLicenseHandler(deps.LicenseSvc)
	app.Get("/license", lic.Info)
	app.Post("/license", lic.Activate)

	// Painel administrativo: login público, o resto exige Bearer com papel admin.
	admin := NewAdminHandler(deps.AuthUC, deps.LicenseSvc)
	app.Post("/admin/login", admin.Login)

	protected := app.Group("/", AdminMiddleware(deps.JWTSecret))
	protected.Post("/admin/activation-codes", admin.GenerateCode)
	protected.Delete("/license", lic.Clear)
}
