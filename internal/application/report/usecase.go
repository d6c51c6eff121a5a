package report

import (
	"context"
	"time"

	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
)

const topProductsLimit = 5

// UseCase monta a visão consolidada do dia para o painel: faturamento e vendas
// de hoje, comandas abertas, estoque baixo e ranking de produtos.
type UseCase struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(reportRepo repository.ReportRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{reportRepo: reportRepo, productRepo: productRepo}
}

// Dashboard agrega os indicadores do dia corrente no fuso do servidor.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	revenue, count, err := uc.reportRepo.SalesSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	openCommands, err := uc.reportRepo.CountOpenCommands(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.productRepo.GetLowStock()
	if err != nil {
		return nil, err
	}
	top, err := uc.reportRepo.TopProducts(ctx, from, to, topProductsLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		RevenueToday:  revenue,
		SalesToday:    count,
		OpenCommands:  openCommands,
		LowStockCount: len(lowStock),
		LowStockItems: make([]dto.ProductResponse, 0, len(lowStock)),
		TopProducts:   make([]dto.TopProductDTO, 0, len(top)),
	}
	for _, p := range lowStock {
		resp.LowStockItems = append(resp.LowStockItems, dto.ProductResponse{
			ID:            p.ID,
			Name:          p.Name,
			CategoryID:    p.CategoryID,
			CategoryName:  p.CategoryName,
			Price:         p.Price,
			StockQuantity: p.StockQuantity,
			MinStockAlert: p.MinStockAlert,
			CreatedAt:     p.CreatedAt,
		})
	}
	for _, t := range top {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductDTO{
			ProductID:    t.ProductID,
			ProductName:  t.ProductName,
			QuantitySold: t.QuantitySold,
			Revenue:      t.Revenue,
		})
	}
	return resp, nil
}
