package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/diegofsiilva/cenas-bar/internal/application/auth"
	appcommand "github.com/diegofsiilva/cenas-bar/internal/application/command"
	"github.com/diegofsiilva/cenas-bar/internal/application/inventory"
	"github.com/diegofsiilva/cenas-bar/internal/application/license"
	"github.com/diegofsiilva/cenas-bar/internal/application/report"
	"github.com/diegofsiilva/cenas-bar/internal/application/usecase"
	infrapdf "github.com/diegofsiilva/cenas-bar/internal/infrastructure/pdf"
	"github.com/diegofsiilva/cenas-bar/internal/infrastructure/postgres"
	httprouter "github.com/diegofsiilva/cenas-bar/internal/interfaces/http"
	"github.com/diegofsiilva/cenas-bar/pkg/config"
	"github.com/diegofsiilva/cenas-bar/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("aplicar migrações")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	tableRepo := postgres.NewTableRepository(pool)
	commandRepo := postgres.NewCommandRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	licenseRepo := postgres.NewLicenseRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	licenseSvc := license.NewService(licenseRepo, cfg.License)
	watcher := license.NewWatcher(licenseSvc, log)
	if err := watcher.Start(); err != nil {
		log.Fatal().Err(err).Msg("watcher de licença")
	}
	defer watcher.Stop()

	receiptGen := infrapdf.NewReceiptGenerator(cfg.App.VenueName)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	tableUC := usecase.NewTableUseCase(tableRepo, commandRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, receiptGen)
	commandUC := appcommand.NewUseCase(txRunner, commandRepo, tableRepo, productRepo)
	inventoryUC := inventory.NewUseCase(txRunner, movementRepo)
	reportUC := report.NewUseCase(reportRepo, productRepo)
	authUC := auth.NewUseCase(licenseSvc, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cenas Bar API",
	}))

	httprouter.Router(app, httprouter.RouterDeps{
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		TableUC:     tableUC,
		SaleUC:      saleUC,
		CommandUC:   commandUC,
		InventoryUC: inventoryUC,
		ReportUC:    reportUC,
		LicenseSvc:  licenseSvc,
		AuthUC:      authUC,
		Metrics:     httprouter.NewMetrics(),
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
