package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult linha do ranking de produtos mais vendidos.
type TopProductResult struct {
	ProductID    string
	ProductName  string
	QuantitySold int
	Revenue      decimal.Decimal
}

// ReportRepository consultas de leitura para o painel (sem lógica de escrita).
type ReportRepository interface {
	SalesSummary(ctx context.Context, from, to time.Time) (revenue decimal.Decimal, count int, err error)
	CountOpenCommands(ctx context.Context) (int, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductResult, error)
}
